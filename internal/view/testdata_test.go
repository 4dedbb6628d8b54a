package view

const samplePayload = `{
  "kind": "youtube#videoListResponse",
  "items": [
    {
      "id": "abc123",
      "snippet": {
        "publishedAt": "2024-03-05T10:00:00Z",
        "channelId": "UC123",
        "title": "Sample Video",
        "description": "Watch more at https://example.com/more now",
        "channelTitle": "Sample Channel",
        "thumbnails": {
          "default": {"url": "https://i.ytimg.com/vi/abc123/default.jpg", "width": 120, "height": 90},
          "medium": {"url": "https://i.ytimg.com/vi/abc123/mqdefault.jpg", "width": 320, "height": 180},
          "high": {"url": "https://i.ytimg.com/vi/abc123/hqdefault.jpg", "width": 480, "height": 360}
        },
        "tags": ["one", "two", "three"]
      },
      "contentDetails": {"duration": "PT4M13S"},
      "statistics": {"viewCount": "1234567", "likeCount": "8910", "commentCount": "42"}
    }
  ]
}`

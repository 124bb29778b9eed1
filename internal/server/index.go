package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// _indexHTML is the browser preview page: the live frame plus track
// metadata, refreshed client-side.
const _indexHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>PiMO Display</title>
    <style>
        body { margin: 0; padding: 20px; background: #0a0a0a; color: #fff;
               font-family: monospace; display: flex; flex-direction: column; align-items: center; }
        h1 { color: #00ff00; margin-bottom: 10px; }
        .display { border: 2px solid #333; border-radius: 8px; margin: 20px 0; }
        .display img { display: block; image-rendering: pixelated; image-rendering: crisp-edges; }
        .info { margin-top: 20px; text-align: center; color: #888; }
        .track { color: #fff; font-size: 18px; margin: 5px 0; }
        .artist { color: #ff6b6b; font-size: 14px; }
        .album { color: #74c0fc; font-size: 12px; }
        .status { color: #00ff00; font-size: 12px; margin-top: 10px; }
    </style>
    <script>
        function refreshDisplay() {
            const img = document.getElementById('display');
            img.src = '/display.png?t=' + new Date().getTime();
            fetch('/api/track')
                .then(r => r.json())
                .then(data => {
                    if (data.track) {
                        document.getElementById('track').textContent = data.track.name || 'Unknown';
                        document.getElementById('artist').textContent = data.track.artist || 'Unknown';
                        document.getElementById('album').textContent = data.track.album || '';
                        let status = data.track.now_playing ? 'NOW PLAYING' : 'LAST PLAYED';
                        if (data.offline) { status = 'OFFLINE - ' + status; }
                        document.getElementById('status').textContent = status;
                    }
                });
        }
        setInterval(refreshDisplay, 5000);
        window.addEventListener('load', refreshDisplay);
    </script>
</head>
<body>
    <h1>PiMO Display</h1>
    <div class="display"><img id="display" src="/display.png" alt="Display"></div>
    <div class="info">
        <div id="status" class="status">Loading...</div>
        <div id="track" class="track">-</div>
        <div id="artist" class="artist">-</div>
        <div id="album" class="album">-</div>
    </div>
</body>
</html>`

func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(_indexHTML))
}

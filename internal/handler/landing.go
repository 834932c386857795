package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const landingPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>remitscan</title>
</head>
<body>
  <h1>remitscan</h1>
  <p>Payment coupon extraction relay.</p>
  <ul>
    <li><code>POST /extract</code> &mdash; submit a base64 document or image</li>
    <li><code>GET /health</code> &mdash; liveness probe</li>
  </ul>
</body>
</html>
`

// Landing serves a static page for any unmatched route.
func Landing(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(landingPage))
}

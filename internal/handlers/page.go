package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
)

const pageHead = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>`

const pageBody = `</title>
<style>
body { font-family: monospace; margin: 1.5rem; }
#calls li { border-bottom: 1px solid #ddd; padding: .25rem 0; }
</style>
</head>
<body>
<form id="open">
  <input name="url" size="60" placeholder="app://deeplink">
  <button>Open URL</button>
</form>
<ol id="calls"></ol>
<script>
const list = document.getElementById("calls");
function show(c) {
  const li = document.createElement("li");
  li.textContent = "#" + c.seq + " " + c.method + " " + JSON.stringify(c.args);
  list.appendChild(li);
}
fetch("/api/calls").then(r => r.json()).then(cs => cs.forEach(show));
const sock = new WebSocket(location.origin.replace("http", "ws") + "/ws/calls");
sock.onmessage = e => show(JSON.parse(e.data));
document.getElementById("open").onsubmit = e => {
  e.preventDefault();
  fetch("/api/open", {method: "POST", body: JSON.stringify({url: e.target.url.value})});
};
</script>
</body>
</html>
`

func inspectorPage(title string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, pageHead); err != nil {
			return err
		}
		if _, err := io.WriteString(w, templ.EscapeString(title)); err != nil {
			return err
		}
		_, err := io.WriteString(w, pageBody)
		return err
	})
}

func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	templ.Handler(inspectorPage("metrica inspector")).ServeHTTP(w, r)
}

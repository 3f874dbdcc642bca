package web

import "html/template"

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>Browser Use Agent</title></head>
<body>
<h1>&#127760; Browser Use Agent</h1>
{{if .Error}}<p style="color: red;">{{.Error}}</p>{{end}}
<form method="POST" action="/run">
  <p>
    <label for="task">Enter your task</label><br>
    <input type="text" id="task" name="task" size="80"
      placeholder="e.g., Go to Reddit, search for 'python', and get the first post title">
  </p>
  <p>
    Select model:
    <label><input type="radio" name="provider" value="gemini" {{if eq .Provider "gemini"}}checked{{end}}> Gemini 2.0 Flash</label>
    <label><input type="radio" name="provider" value="openai" {{if eq .Provider "openai"}}checked{{end}}> GPT-4o</label>
  </p>
  <p>
    <label><input type="checkbox" name="use_browser"> Use Browser Instance</label>
    <label><input type="checkbox" name="vision"> Use Vision</label>
  </p>
  <p><button type="submit">Run Task</button></p>
</form>
</body>
</html>
`))

var resultTemplate = template.Must(template.New("result").Parse(`<!DOCTYPE html>
<html>
<head><title>Browser Use Agent</title></head>
<body>
<h1>&#127760; Browser Use Agent</h1>
{{if .Succeeded}}
<p style="color: green;"><strong>&#9989; {{.Banner}}</strong></p>
{{else}}
<p style="color: red;"><strong>&#10060; {{.Banner}}</strong></p>
{{end}}

{{if .Steps}}
<h2>Steps</h2>
{{range .Steps}}
<h3>Step {{.Index}}</h3>
<p><strong>Action:</strong> {{.Action}}</p>
<p><strong>URL:</strong> {{.URL}}</p>
{{if .ExtractedHTML}}
<p><strong>Extracted Content:</strong></p><pre>{{.ExtractedHTML}}</pre>
{{else}}
<p><strong>Extracted Content:</strong> {{.Extracted}}</p>
{{end}}
<p><strong>Model Action:</strong> <code>{{.ModelAction}}</code></p>
<hr>
{{end}}
{{end}}

{{if .DebugJSON}}
<details>
  <summary>Debug View</summary>
  <pre>{{.DebugJSON}}</pre>
</details>
{{end}}

{{if .GIFID}}
<h2>{{.GIFLabel}}</h2>
<img src="/gif?id={{.GIFID}}" alt="Task execution steps">
{{end}}
{{if .GIFError}}
<p style="color: orange;">{{.GIFError}}</p>
{{end}}

<p><a href="/">Run another task</a></p>
</body>
</html>
`))

// Package views holds the templ components for the viewer page.
package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/procmesh/apartment-engine/internal/protocol"
)

// IndexPage renders the viewer shell with the initial scene snapshot inlined
// as JSON, so the first paint needs no round trip to /stream.
func IndexPage(snap protocol.SceneSnapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		scene, err := templ.JSONString(snap)
		if err != nil {
			return fmt.Errorf("encode scene snapshot: %w", err)
		}
		if _, err := io.WriteString(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8"/>
<title>Apartment Mesh Engine</title>
<link rel="stylesheet" href="/static/app.css"/>
</head>
<body>
<header>
<h1>Apartment Mesh Engine</h1>
<span id="status">connecting</span>
</header>
<main>
`); err != nil {
			return err
		}
		if err := controls(snap.Parameters).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<canvas id="plan" width="720" height="900"></canvas>
<div id="legend"></div>
</main>
<script id="scene-data" type="application/json">`+scene+`</script>
<script src="/static/app.js"></script>
</body>
</html>
`); err != nil {
			return err
		}
		return nil
	})
}

// controls renders the parameter panel pre-filled from the snapshot.
func controls(p protocol.ParametersLite) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		checked := func(b bool) string {
			if b {
				return " checked"
			}
			return ""
		}
		_, err := fmt.Fprintf(w, `<form id="controls">
<label>Seed <input type="number" name="seed" value="%d"/></label>
<label>Width <input type="number" step="0.1" name="width" value="%g"/></label>
<label>Length <input type="number" step="0.1" name="length" value="%g"/></label>
<label><input type="checkbox" name="cutFrontDoor"%s/> Front door</label>
<label><input type="checkbox" name="partitionInterior"%s/> Partition rooms</label>
<label><input type="checkbox" name="entryOpenToLiving"%s/> Open entry</label>
<button type="button" id="regenerate">Regenerate</button>
<button type="button" id="reroll">Reroll seed</button>
</form>
`,
			p.Seed, p.Width, p.Length,
			checked(p.CutFrontDoor), checked(p.PartitionInterior), checked(p.EntryOpenToLiving))
		return err
	})
}

// Package tailwindr augments rendered Markdown documents with Tailwind CSS.
//
// # Quick Start
//
// Create a format and render a document:
//
//	format := tailwindr.New()
//	outPath, err := format.Render(ctx, "report.md", "report.html")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// By default the output references the Tailwind CDN so the browser compiles
// utility classes just in time. Use WithSelfContained to compile locally
// instead and embed the result as a data URI:
//
//	format := tailwindr.New(
//	    tailwindr.WithSelfContained(true),
//	    tailwindr.WithSlimCSS(true),
//	)
//
// # Post-Processing Pipeline
//
// The post-processing stage runs once per rendered document:
//
//  1. Boilerplate materialization (seed CSS, tailwind.config.js,
//     postcss.config.js) into the output directory, never overwriting
//     files that already exist
//  2. Either a blocking Tailwind CLI build (self-contained mode) or
//     construction of a CDN reference fragment
//  3. Splicing the result into the rendered HTML at the
//     <!-- tailwind --> marker, or before </head> when no marker exists
//  4. Cleanup of generated scratch files, unless asked to keep them
//
// # Document Options
//
// Per-document options come from YAML front matter and override the
// format's configuration:
//
//	---
//	title: Quarterly Report
//	self_contained: true
//	slim_css: true
//	css: ["extra.css"]
//	tailwind_config: "tailwind.config.js"
//	highlight: github
//	---
//
// # External Tool Requirements
//
// Self-contained mode shells out to the Tailwind CLI through npx. Node.js
// must be installed; npx downloads the tailwindcss package on first use.
// CDN reference mode needs no local tooling.
package tailwindr

package parse

import (
	"context"
	"fmt"
	"sort"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/phobologic/acfgen/internal/lang"
)

// script is one block of script source and the language it is written in.
type script struct {
	lang   string
	setup  bool
	source []byte
}

// scriptBlocks returns the <script> blocks of a single-file component,
// <script setup> first. A component without script yields no blocks.
func scriptBlocks(ctx context.Context, source []byte) ([]script, error) {
	vue := lang.Languages["vue"]
	q, err := vue.GetQuery()
	if err != nil {
		return nil, err
	}

	tree, err := vue.NewParser().ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parsing component: %w", err)
	}
	defer tree.Close()

	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(q, tree.RootNode())

	var blocks []script
	for {
		match, ok := qc.NextMatch()
		if !ok {
			break
		}

		var start, body *sitter.Node
		for _, c := range match.Captures {
			switch q.CaptureNameForId(c.Index) {
			case "script.start":
				start = c.Node
			case "script.body":
				body = c.Node
			}
		}
		if start == nil || body == nil {
			continue
		}

		attrs := lang.Attributes(start, source)
		langName := lang.ForScriptLang(attrs["lang"])
		if langName == "" {
			return nil, fmt.Errorf("unsupported script lang %q", attrs["lang"])
		}
		_, setup := attrs["setup"]
		blocks = append(blocks, script{
			lang:   langName,
			setup:  setup,
			source: []byte(lang.NodeText(body, source)),
		})
	}

	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].setup && !blocks[j].setup
	})
	return blocks, nil
}

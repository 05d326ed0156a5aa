package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oxhq/sce/internal/engine"
	"github.com/oxhq/sce/internal/point"
	"github.com/oxhq/sce/internal/slicer"
)

// rpcPoint mirrors original_source/slicer/src/main.rs's SerializablePoint: a
// tuple-wrapped (row, column) pair, so it round-trips as a 2-element JSON
// array rather than an object.
type rpcPoint struct {
	Row    int
	Column int
}

func (p rpcPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.Row, p.Column})
}

func (p *rpcPoint) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	p.Row, p.Column = pair[0], pair[1]
	return nil
}

// rpcRange mirrors SerializableRange: a (start, end) tuple of rpcPoints.
type rpcRange struct {
	Start rpcPoint
	End   rpcPoint
}

func (r rpcRange) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]rpcPoint{r.Start, r.End})
}

type rpcSliceRequest struct {
	Direction string `json:"direction"`
}

type rpcInlineRequest struct {
	TargetContent string   `json:"target_content"`
	TargetPoint   rpcPoint `json:"target_point"`
}

// rpcRequest mirrors main.rs's Request: one request, one operation, decoded
// whole from stdin.
type rpcRequest struct {
	Filename  string            `json:"filename"`
	Language  *string           `json:"language"`
	Content   string            `json:"content"`
	Point     rpcPoint          `json:"point"`
	Operation string            `json:"operation"`
	Slice     *rpcSliceRequest  `json:"slice"`
	Inline    *rpcInlineRequest `json:"inline"`
}

type rpcSliceResponse struct {
	RangesToRemove []rpcRange `json:"ranges_to_remove"`
}

type rpcInlineResponse struct {
	Content string `json:"content"`
}

// newRPCCmd exposes the engine as the same one-shot stdin-request/
// stdout-response contract as the original slicer binary: decode a single
// Request, run the operation it names, encode the matching response.
func newRPCCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rpc",
		Short: "Run a single slice or inline request read as JSON from stdin, writing the JSON response to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			var req rpcRequest
			if err := json.NewDecoder(cmd.InOrStdin()).Decode(&req); err != nil {
				return fmt.Errorf("decoding request: %w", err)
			}

			eng, err := newEngine()
			if err != nil {
				return err
			}

			language := ""
			if req.Language != nil {
				language = *req.Language
			}
			src := engine.Source{
				Filename: req.Filename,
				Language: language,
				Content:  []byte(req.Content),
				Point:    point.Point{Row: req.Point.Row, Column: req.Point.Column},
			}

			switch req.Operation {
			case "Slice":
				return runRPCSlice(cmd, eng, src, req.Slice)
			case "Inline":
				return runRPCInline(cmd, eng, src, language, req.Inline)
			default:
				return fmt.Errorf("unknown operation %q (want Slice or Inline)", req.Operation)
			}
		},
	}
}

func runRPCSlice(cmd *cobra.Command, eng *engine.Engine, src engine.Source, sliceReq *rpcSliceRequest) error {
	if sliceReq == nil {
		return fmt.Errorf("operation Slice requires a slice request body")
	}
	dir := slicer.Backward
	if sliceReq.Direction == "Forward" {
		dir = slicer.Forward
	}

	rngs, err := eng.Slice(cmd.Context(), src, dir)
	if err != nil {
		return err
	}

	resp := rpcSliceResponse{RangesToRemove: make([]rpcRange, len(rngs))}
	for i, r := range rngs {
		resp.RangesToRemove[i] = rpcRange{
			Start: rpcPoint{Row: r.StartPoint.Row, Column: r.StartPoint.Column},
			End:   rpcPoint{Row: r.EndPoint.Row, Column: r.EndPoint.Column},
		}
	}
	return json.NewEncoder(cmd.OutOrStdout()).Encode(resp)
}

func runRPCInline(cmd *cobra.Command, eng *engine.Engine, src engine.Source, language string, inlineReq *rpcInlineRequest) error {
	if inlineReq == nil {
		return fmt.Errorf("operation Inline requires an inline request body")
	}

	callee := engine.Source{
		Filename: src.Filename,
		Language: language,
		Content:  []byte(inlineReq.TargetContent),
		Point:    point.Point{Row: inlineReq.TargetPoint.Row, Column: inlineReq.TargetPoint.Column},
	}

	result, err := eng.Inline(cmd.Context(), src, callee)
	if err != nil {
		return err
	}
	return json.NewEncoder(cmd.OutOrStdout()).Encode(rpcInlineResponse{Content: result.Content})
}

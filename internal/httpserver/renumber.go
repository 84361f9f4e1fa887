package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tsawler/renumber"
	"github.com/tsawler/renumber/format"
	"github.com/tsawler/renumber/internal/response"
	"github.com/tsawler/renumber/render"
	"github.com/tsawler/renumber/sequence"
)

type renumberRequest struct {
	Text string `json:"text"`
	// Format is "text" (default) or "html"
	Format string `json:"format"`
}

type warningResp struct {
	Line int    `json:"line"`
	Kind string `json:"kind"`
	Text string `json:"text"`
}

type renumberResp struct {
	LeadingText string        `json:"leading_text"`
	Elements    []string      `json:"elements"`
	Output      string        `json:"output"`
	Warnings    []warningResp `json:"warnings"`
}

var errUnknownFormat = errors.New("unknown format")

func (srv *HTTPServer) renumber(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, srv.maxBodyBytes)

	var req renumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.PayloadTooLarge(c)
			return
		}
		response.Error(c, response.BadRequestCode, fmt.Errorf("invalid request body: %w", err))
		return
	}

	p := renumber.FromText(req.Text)
	switch req.Format {
	case "", "text":
	case "html":
		p = p.Format(format.HTML)
	default:
		response.Error(c, response.BadRequestCode, fmt.Errorf("%w: %q", errUnknownFormat, req.Format))
		return
	}

	result, warnings, err := p.Analyze()
	if err == nil {
		var out string
		out, err = render.Result(result)
		if err == nil {
			srv.logWarnings(c, warnings)
			response.OK(c, newRenumberResp(result, out, warnings))
			return
		}
	}

	switch {
	case errors.Is(err, renumber.ErrEmptyInput):
		response.Error(c, response.BadRequestCode, err)
	case errors.Is(err, sequence.ErrTooFewLines):
		response.Error(c, response.TooFewLinesCode, err)
	case errors.Is(err, sequence.ErrUnrecognizedPattern), errors.Is(err, render.ErrAnalysisFailed):
		response.Error(c, response.UncommonPatternCode, render.ErrAnalysisFailed)
	default:
		response.InternalError(c, err)
	}
}

func (srv *HTTPServer) logWarnings(c *gin.Context, warnings []sequence.Warning) {
	for _, w := range warnings {
		srv.l.Debug("line not renumbered cleanly",
			zap.String("request_id", c.GetString("request_id")),
			zap.Int("line", w.Line),
			zap.String("kind", w.Kind.String()),
		)
	}
}

func newRenumberResp(result *sequence.Result, out string, warnings []sequence.Warning) renumberResp {
	resp := renumberResp{
		LeadingText: result.LeadingText,
		Elements:    result.Elements(),
		Output:      out,
		Warnings:    make([]warningResp, len(warnings)),
	}
	if resp.Elements == nil {
		resp.Elements = []string{}
	}
	for i, w := range warnings {
		resp.Warnings[i] = warningResp{Line: w.Line, Kind: w.Kind.String(), Text: w.Text}
	}
	return resp
}

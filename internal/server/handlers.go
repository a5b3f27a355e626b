package server

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/pkg/errors"

	"github.com/mj1618/accessibility/internal/ax"
	"github.com/mj1618/accessibility/internal/model"
	"github.com/mj1618/accessibility/internal/output"
	"github.com/mj1618/accessibility/internal/platform"
)

// resultText serializes v to YAML for an MCP response.
func resultText(v interface{}) (*mcp.CallToolResult, error) {
	b, err := output.Marshal(output.FormatYAML, v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

func (s *Server) finderOptions(params map[string]interface{}) []ax.FinderOption {
	search := s.opts.Search
	return []ax.FinderOption{
		ax.WithWait(durationMsParam(params, "wait", search.Wait)),
		ax.WithMaxDepth(intParam(params, "max_depth", search.MaxDepth)),
		ax.WithPollInterval(search.PollInterval),
	}
}

// locate runs fn on the element selected by the target and query arguments.
// The caller must hold the provider mutex.
func (s *Server) locate(ctx context.Context, params map[string]interface{}, fn func(f *ax.Finder, el *ax.Element) (interface{}, error)) (*mcp.CallToolResult, error) {
	q, err := queryParam(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	f, el, err := s.provider.Find(ctx, targetParam(params), q.Predicate(), s.finderOptions(params)...)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	defer f.Close()

	v, err := fn(f, el)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return resultText(v)
}

func (s *Server) handleApps(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	if s.provider.Workspace == nil {
		return mcp.NewToolResultError(platform.ErrUnsupported.Error()), nil
	}
	apps, err := s.provider.Workspace.RunningApps()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return resultText(map[string][]model.App{"apps": apps})
}

func (s *Server) handleTree(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	target := targetParam(params)
	opts := model.CollectOptions{
		Depth:   intParam(params, "depth", 0),
		Limit:   intParam(params, "limit", 0),
		Actions: boolParam(params, "actions", false),
	}

	s.providerMu.Lock()
	tree, err := s.cache.Snapshot(s.provider, target, opts)
	s.providerMu.Unlock()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var elements []model.Element
	if tree != nil {
		elements = []model.Element{*tree}
	}
	elements = model.FilterElements(elements, listParam(params, "roles"), nil)
	elements = model.FilterByText(elements, stringParam(params, "text", ""))
	if boolParam(params, "focused", false) {
		elements = model.FilterByFocused(elements)
	}
	if boolParam(params, "prune", false) {
		elements = model.PruneEmptyGroups(elements)
	}

	ts := time.Now().Unix()
	if boolParam(params, "flat", false) {
		return resultText(output.FlatResult{
			Target:   target.String(),
			PID:      target.PID,
			TS:       ts,
			Elements: model.FlattenElements(elements),
		})
	}
	count := 0
	for _, el := range elements {
		count += el.Count()
	}
	if elements == nil {
		elements = []model.Element{}
	}
	return resultText(output.TreeResult{
		Target:   target.String(),
		PID:      target.PID,
		TS:       ts,
		Count:    count,
		Elements: elements,
	})
}

func (s *Server) handleFind(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	start := time.Now()
	return s.locate(ctx, request.GetArguments(), func(f *ax.Finder, el *ax.Element) (interface{}, error) {
		return output.FindResult{
			Match:   model.Describe(el, true),
			Passes:  f.Passes(),
			Elapsed: time.Since(start).Round(time.Millisecond).String(),
		}, nil
	})
}

func (s *Server) handleAttributes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	return s.locate(ctx, request.GetArguments(), func(_ *ax.Finder, el *ax.Element) (interface{}, error) {
		return model.Inspect(el)
	})
}

func (s *Server) handlePerformAction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	action := model.ActionName(stringParam(params, "action", "press"))

	s.providerMu.Lock()
	defer s.providerMu.Unlock()
	defer s.cache.InvalidateAll()

	return s.locate(ctx, params, func(_ *ax.Finder, el *ax.Element) (interface{}, error) {
		if err := el.PerformAction(action); err != nil {
			return nil, errors.Wrapf(err, "perform %s", action)
		}
		return output.ActionResult{OK: true, Action: action, Element: model.Describe(el, false)}, nil
	})
}

func (s *Server) handleSetValue(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	attribute := stringParam(params, "attribute", ax.ValueAttr.Name())
	if _, ok := params["value"]; !ok {
		return mcp.NewToolResultError("value is required"), nil
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()
	defer s.cache.InvalidateAll()

	return s.locate(ctx, params, func(_ *ax.Finder, el *ax.Element) (interface{}, error) {
		v, err := model.SetFromText(el, attribute, stringParam(params, "value", ""))
		if err != nil {
			return nil, errors.Wrapf(err, "set %s", attribute)
		}
		return output.ActionResult{OK: true, Action: "set " + attribute, Element: model.Describe(el, false), Value: model.PlainValue(v)}, nil
	})
}

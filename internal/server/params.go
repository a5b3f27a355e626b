package server

import (
	"fmt"
	"strings"
	"time"

	"github.com/mj1618/accessibility/internal/model"
	"github.com/mj1618/accessibility/internal/platform"
)

// Parameter extraction helpers for tool arguments

func stringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

func intParam(params map[string]interface{}, key string, defaultVal int) int {
	if v, ok := params[key]; ok {
		switch n := v.(type) {
		case int:
			return n
		case float64:
			return int(n)
		case int64:
			return int(n)
		}
	}
	return defaultVal
}

func boolParam(params map[string]interface{}, key string, defaultVal bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return defaultVal
}

func durationMsParam(params map[string]interface{}, key string, defaultVal time.Duration) time.Duration {
	if _, ok := params[key]; !ok {
		return defaultVal
	}
	return time.Duration(intParam(params, key, 0)) * time.Millisecond
}

func listParam(params map[string]interface{}, key string) []string {
	var out []string
	for _, s := range strings.Split(stringParam(params, key, ""), ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func targetParam(params map[string]interface{}) platform.Target {
	return platform.Target{
		App:        stringParam(params, "app", ""),
		Bundle:     stringParam(params, "bundle", ""),
		PID:        intParam(params, "pid", 0),
		SystemWide: boolParam(params, "system", false),
	}
}

func queryParam(params map[string]interface{}) (model.Query, error) {
	attrs, err := model.ParseAttributeFilters(listParam(params, "attributes"))
	if err != nil {
		return model.Query{}, err
	}
	return model.Query{
		Role:          stringParam(params, "role", ""),
		Subrole:       stringParam(params, "subrole", ""),
		Title:         stringParam(params, "title", ""),
		TitleContains: stringParam(params, "title_contains", ""),
		Text:          stringParam(params, "text", ""),
		Identifier:    stringParam(params, "identifier", ""),
		Attributes:    attrs,
	}, nil
}

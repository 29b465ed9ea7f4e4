package server

// Argument extraction helpers for MCP tool requests. Arguments arrive
// JSON-decoded, so numbers are float64 and arrays are []interface{}.

func stringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return defaultVal
}

func intParam(params map[string]interface{}, key string, defaultVal int) int {
	switch v := params[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return defaultVal
}

func int64Param(params map[string]interface{}, key string, defaultVal int64) int64 {
	switch v := params[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	}
	return defaultVal
}

func boolParam(params map[string]interface{}, key string, defaultVal bool) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return defaultVal
}

// optIntParam distinguishes "absent" from "zero".
func optIntParam(params map[string]interface{}, key string) *int {
	switch v := params[key].(type) {
	case float64:
		n := int(v)
		return &n
	case int:
		n := v
		return &n
	}
	return nil
}

// optBoolParam distinguishes "absent" from "false".
func optBoolParam(params map[string]interface{}, key string) *bool {
	if v, ok := params[key].(bool); ok {
		return &v
	}
	return nil
}

func stringSliceParam(params map[string]interface{}, key string) []string {
	raw, ok := params[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

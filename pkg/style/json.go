package style

import (
	"encoding/json"

	"github.com/arthur-debert/modlauncher/pkg/errors"
	"github.com/arthur-debert/modlauncher/pkg/types"
)

// JSONRenderer renders results as indented JSON.
type JSONRenderer struct{}

// NewJSONRenderer creates a new JSON renderer
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

func (r *JSONRenderer) encode(v interface{}) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return `{"error":"failed to encode result"}`
	}
	return string(data)
}

func (r *JSONRenderer) RenderModList(result *types.ListModsResult) string {
	return r.encode(result)
}

func (r *JSONRenderer) RenderLoadOrder(result *types.LoadOrderResult) string {
	return r.encode(result)
}

func (r *JSONRenderer) RenderMerge(result *types.MergeResult) string {
	return r.encode(result)
}

func (r *JSONRenderer) RenderLaunch(result *types.LaunchResult) string {
	return r.encode(result)
}

func (r *JSONRenderer) RenderSelection(result *types.SelectionResult) string {
	return r.encode(result)
}

func (r *JSONRenderer) RenderPresets(result *types.PresetListResult) string {
	return r.encode(result)
}

func (r *JSONRenderer) RenderCacheClear(result *types.CacheClearResult) string {
	return r.encode(result)
}

// RenderWarnings returns nothing; warnings are part of each result.
func (r *JSONRenderer) RenderWarnings(warnings types.Warnings) string {
	return ""
}

func (r *JSONRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return r.encode(map[string]interface{}{
		"error":   err.Error(),
		"code":    string(errors.GetErrorCode(err)),
		"details": errors.GetErrorDetails(err),
	})
}

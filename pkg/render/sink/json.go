package sink

import (
	"encoding/json"

	"github.com/matzehuels/treeview/pkg/errors"
	"github.com/matzehuels/treeview/pkg/render"
)

type jsonOutput struct {
	ID     string        `json:"id"`
	Width  float64       `json:"width"`
	Height float64       `json:"height"`
	Scene  *render.Scene `json:"scene"`
}

// RenderJSON exports the scene with its document id and size.
func RenderJSON(s *render.Scene) ([]byte, error) {
	w, h := s.Size()
	out := jsonOutput{
		ID:     DocumentID(s),
		Width:  w,
		Height: h,
		Scene:  s,
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode scene")
	}
	return append(data, '\n'), nil
}

// ReadJSON decodes a scene written by [RenderJSON].
func ReadJSON(data []byte) (*render.Scene, error) {
	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode scene")
	}
	if out.Scene == nil {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "document has no scene")
	}
	return out.Scene, nil
}

package ddev

import (
	"context"
	"encoding/json"
)

// InstalledAddons returns the add-ons installed in a project. When
// nothing is installed ddev emits a plain message string where the
// array would be, so the payload is decoded tolerantly.
func (r *Runner) InstalledAddons(ctx context.Context, project string) ([]InstalledAddon, error) {
	out, err := r.Output(ctx, "--json-output", "add-on", "list", "--installed", "--project", project)
	if err != nil {
		return nil, err
	}

	var resp jsonResponse[json.RawMessage]
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		return nil, parseError("%v", err)
	}
	if len(resp.Raw) == 0 || resp.Raw[0] != '[' {
		return nil, nil
	}

	var addons []InstalledAddon
	if err := json.Unmarshal(resp.Raw, &addons); err != nil {
		return nil, parseError("%v", err)
	}
	return addons, nil
}

package ops

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/ddesk/ddesk/internal/ddev"
)

// addonRegistryURL is the public feed of available ddev add-ons.
const addonRegistryURL = "https://addons.ddev.com/addons.json"

var registryClient = &http.Client{Timeout: 30 * time.Second}

// ListInstalledAddons returns the add-ons installed in a project.
func (s *Service) ListInstalledAddons(ctx context.Context, project string) ([]ddev.InstalledAddon, error) {
	return s.run.InstalledAddons(ctx, project)
}

// FetchAddonRegistry downloads the add-on registry feed.
func (s *Service) FetchAddonRegistry(ctx context.Context) (*ddev.AddonRegistry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addonRegistryURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := registryClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var reg ddev.AddonRegistry
	if err := json.Unmarshal(body, &reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

// InstallAddon installs an add-on ("user/repo") into a project as a
// cancellable task. Returns the task id.
func (s *Service) InstallAddon(project, addon string) string {
	return s.run.Stream("addon-install", project, "add-on", "get", addon, "--project", project)
}

// RemoveAddon removes an installed add-on from a project as a
// cancellable task. Returns the task id.
func (s *Service) RemoveAddon(project, addon string) string {
	return s.run.Stream("addon-remove", project, "add-on", "remove", addon, "--project", project)
}

package ddev

import "encoding/json"

// jsonResponse is the envelope ddev wraps around --json-output
// payloads: {"level":"info","msg":"...","raw":<payload>,"time":"..."}.
type jsonResponse[T any] struct {
	Level string `json:"level"`
	Msg   string `json:"msg"`
	Raw   T      `json:"raw"`
	Time  string `json:"time"`
}

// ProjectInfo is one row of `ddev list`.
type ProjectInfo struct {
	Name            string `json:"name"`
	Status          string `json:"status"`
	StatusDesc      string `json:"status_desc"`
	Type            string `json:"type"`
	Approot         string `json:"approot"`
	Shortroot       string `json:"shortroot"`
	Docroot         string `json:"docroot"`
	PrimaryURL      string `json:"primary_url"`
	HTTPURL         string `json:"httpurl"`
	HTTPSURL        string `json:"httpsurl"`
	MailpitURL      string `json:"mailpit_url"`
	MailpitHTTPSURL string `json:"mailpit_https_url"`
	Router          string `json:"router"`
	RouterDisabled  bool   `json:"router_disabled"`
	MutagenEnabled  bool   `json:"mutagen_enabled"`
	NodeJSVersion   string `json:"nodejs_version"`
}

// Running reports whether the project's containers are up.
func (p ProjectInfo) Running() bool { return p.Status == "running" }

// HostPortMapping maps a container port to the host port it is
// published on.
type HostPortMapping struct {
	ExposedPort string `json:"exposed_port"`
	HostPort    string `json:"host_port"`
}

// ServiceInfo describes one container of a project.
type ServiceInfo struct {
	ShortName        string            `json:"short_name"`
	FullName         string            `json:"full_name"`
	Image            string            `json:"image"`
	Status           string            `json:"status"`
	ExposedPorts     string            `json:"exposed_ports"`
	HostPorts        string            `json:"host_ports"`
	HostPortsMapping []HostPortMapping `json:"host_ports_mapping"`
	HTTPURL          string            `json:"http_url"`
	HTTPSURL         string            `json:"https_url"`
}

// DatabaseInfo describes a project's database container.
type DatabaseInfo struct {
	Type          string `json:"database_type"`
	Version       string `json:"database_version"`
	Host          string `json:"host"`
	Port          string `json:"dbPort"`
	Name          string `json:"dbname"`
	Username      string `json:"username"`
	Password      string `json:"password"`
	PublishedPort int    `json:"published_port"`
}

// ProjectDetails is the payload of `ddev describe`.
type ProjectDetails struct {
	Name            string                 `json:"name"`
	Status          string                 `json:"status"`
	StatusDesc      string                 `json:"status_desc"`
	Type            string                 `json:"type"`
	Approot         string                 `json:"approot"`
	Shortroot       string                 `json:"shortroot"`
	Docroot         string                 `json:"docroot"`
	PrimaryURL      string                 `json:"primary_url"`
	HTTPURL         string                 `json:"httpurl"`
	HTTPSURL        string                 `json:"httpsurl"`
	Hostname        string                 `json:"hostname"`
	Hostnames       []string               `json:"hostnames"`
	HTTPURLs        []string               `json:"httpURLs"`
	HTTPSURLs       []string               `json:"httpsURLs"`
	URLs            []string               `json:"urls"`
	PHPVersion      string                 `json:"php_version"`
	WebserverType   string                 `json:"webserver_type"`
	DatabaseType    string                 `json:"database_type"`
	DatabaseVersion string                 `json:"database_version"`
	PerformanceMode string                 `json:"performance_mode"`
	RouterHTTPPort  string                 `json:"router_http_port"`
	RouterHTTPSPort string                 `json:"router_https_port"`
	RouterStatus    string                 `json:"router_status"`
	XdebugEnabled   bool                   `json:"xdebug_enabled"`
	MailpitURL      string                 `json:"mailpit_url"`
	MutagenEnabled  bool                   `json:"mutagen_enabled"`
	NodeJSVersion   string                 `json:"nodejs_version"`
	DBInfo          *DatabaseInfo          `json:"dbinfo"`
	Services        map[string]ServiceInfo `json:"services"`
}

// InstalledAddon is one row of `ddev add-on list --installed`. ddev
// emits these with capitalized keys.
type InstalledAddon struct {
	Name       string `json:"Name"`
	Repository string `json:"Repository"`
	Version    string `json:"Version"`
}

// FlexString decodes a JSON value that may arrive as a string, a
// number, or null. The add-on registry's tag_name field does all
// three.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// RegistryAddon is one entry from the addons.ddev.com registry feed.
type RegistryAddon struct {
	Title             string     `json:"title"`
	GithubURL         string     `json:"github_url"`
	Description       string     `json:"description"`
	User              string     `json:"user"`
	Repo              string     `json:"repo"`
	DefaultBranch     string     `json:"default_branch"`
	TagName           FlexString `json:"tag_name"`
	VersionConstraint string     `json:"ddev_version_constraint"`
	Dependencies      []string   `json:"dependencies"`
	Type              string     `json:"type"`
	Stars             int        `json:"stars"`
}

// FullName is the "user/repo" identifier passed to `ddev add-on get`.
func (a RegistryAddon) FullName() string { return a.User + "/" + a.Repo }

// AddonRegistry is the full addons.ddev.com feed.
type AddonRegistry struct {
	UpdatedDatetime  string          `json:"updated_datetime"`
	TotalAddonsCount int             `json:"total_addons_count"`
	OfficialCount    int             `json:"official_addons_count"`
	ContribCount     int             `json:"contrib_addons_count"`
	Addons           []RegistryAddon `json:"addons"`
}

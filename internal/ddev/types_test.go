package ddev

import (
	"encoding/json"
	"testing"
)

func TestDecodeProjectList(t *testing.T) {
	payload := `{
		"level": "info",
		"msg": "1 project",
		"time": "2024-06-01T10:00:00+02:00",
		"raw": [{
			"name": "mysite",
			"status": "running",
			"status_desc": "OK",
			"type": "drupal11",
			"approot": "/home/u/sites/mysite",
			"shortroot": "~/sites/mysite",
			"primary_url": "https://mysite.ddev.site",
			"httpurl": "http://mysite.ddev.site",
			"httpsurl": "https://mysite.ddev.site",
			"mutagen_enabled": false,
			"nodejs_version": "22"
		}]
	}`

	var resp jsonResponse[[]ProjectInfo]
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Raw) != 1 {
		t.Fatalf("expected 1 project, got %d", len(resp.Raw))
	}
	p := resp.Raw[0]
	if p.Name != "mysite" || !p.Running() || p.Type != "drupal11" {
		t.Errorf("unexpected project %+v", p)
	}
	if p.PrimaryURL != "https://mysite.ddev.site" {
		t.Errorf("unexpected primary url %q", p.PrimaryURL)
	}
}

func TestDecodeProjectDetails(t *testing.T) {
	payload := `{
		"level": "info",
		"msg": "describe",
		"raw": {
			"name": "mysite",
			"status": "running",
			"php_version": "8.3",
			"database_type": "mariadb",
			"database_version": "10.11",
			"xdebug_enabled": true,
			"dbinfo": {
				"database_type": "mariadb",
				"database_version": "10.11",
				"host": "db",
				"dbname": "db",
				"username": "db",
				"password": "db",
				"published_port": 32801
			},
			"services": {
				"web": {
					"short_name": "web",
					"full_name": "ddev-mysite-web",
					"status": "running",
					"host_ports_mapping": [
						{"exposed_port": "80", "host_port": "32800"}
					]
				}
			}
		}
	}`

	var resp jsonResponse[ProjectDetails]
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		t.Fatal(err)
	}
	d := resp.Raw
	if d.PHPVersion != "8.3" || !d.XdebugEnabled {
		t.Errorf("unexpected details %+v", d)
	}
	if d.DBInfo == nil || d.DBInfo.PublishedPort != 32801 {
		t.Errorf("unexpected dbinfo %+v", d.DBInfo)
	}
	web, ok := d.Services["web"]
	if !ok || len(web.HostPortsMapping) != 1 || web.HostPortsMapping[0].HostPort != "32800" {
		t.Errorf("unexpected services %+v", d.Services)
	}
}

func TestDecodeInstalledAddons(t *testing.T) {
	payload := `{"raw": [{"Name": "redis", "Repository": "ddev/ddev-redis", "Version": "v1.0.4"}]}`
	var resp jsonResponse[[]InstalledAddon]
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Raw) != 1 || resp.Raw[0].Repository != "ddev/ddev-redis" {
		t.Errorf("unexpected addons %+v", resp.Raw)
	}
}

func TestFlexString(t *testing.T) {
	cases := []struct {
		in   string
		want FlexString
	}{
		{`"v1.2.3"`, "v1.2.3"},
		{`2024`, "2024"},
		{`1.5`, "1.5"},
		{`null`, ""},
	}
	for _, c := range cases {
		var f FlexString
		if err := json.Unmarshal([]byte(c.in), &f); err != nil {
			t.Errorf("unmarshal %s: %v", c.in, err)
			continue
		}
		if f != c.want {
			t.Errorf("unmarshal %s = %q, want %q", c.in, f, c.want)
		}
	}

	var f FlexString
	if err := json.Unmarshal([]byte(`{"x":1}`), &f); err == nil {
		t.Error("expected an error for an object value")
	}
}

func TestRegistryAddonFullName(t *testing.T) {
	a := RegistryAddon{User: "ddev", Repo: "ddev-redis"}
	if a.FullName() != "ddev/ddev-redis" {
		t.Errorf("unexpected full name %q", a.FullName())
	}
}

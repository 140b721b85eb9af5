package ops

import (
	"reflect"
	"testing"
)

func TestConfigArgs(t *testing.T) {
	cases := []struct {
		name string
		opts CreateOptions
		want []string
	}{
		{
			name: "minimal",
			opts: CreateOptions{Name: "mysite"},
			want: []string{"config", "--project-name=mysite", "--create-docroot"},
		},
		{
			name: "full",
			opts: CreateOptions{
				Name:       "blog",
				Type:       "wordpress",
				PHPVersion: "8.3",
				Database:   "mariadb:10.11",
				Webserver:  "nginx-fpm",
				Docroot:    "web",
			},
			want: []string{
				"config", "--project-name=blog", "--create-docroot",
				"--project-type=wordpress", "--php-version=8.3",
				"--database=mariadb:10.11", "--webserver-type=nginx-fpm",
				"--docroot=web",
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := configArgs(c.opts); !reflect.DeepEqual(got, c.want) {
				t.Errorf("configArgs() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestImportDBArgs(t *testing.T) {
	got := importDBArgs("mysite", ImportDBOptions{File: "/tmp/dump.sql.gz", Database: "extra", NoDrop: true})
	want := []string{"import-db", "--file=/tmp/dump.sql.gz", "--database=extra", "--no-drop", "mysite"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("importDBArgs() = %v, want %v", got, want)
	}

	got = importDBArgs("mysite", ImportDBOptions{File: "d.sql"})
	want = []string{"import-db", "--file=d.sql", "mysite"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("importDBArgs() = %v, want %v", got, want)
	}
}

func TestExportDBArgs(t *testing.T) {
	got := exportDBArgs("mysite", ExportDBOptions{File: "/tmp/out.sql.xz", Compression: "xz"})
	want := []string{"export-db", "--file=/tmp/out.sql.xz", "--xz", "mysite"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("exportDBArgs() = %v, want %v", got, want)
	}
}

func TestParseSnapshotList(t *testing.T) {
	out := "Snapshots of project mysite:\n\nmysite_20240101120000\nmysite_pre-upgrade\n"
	got := parseSnapshotList(out)
	want := []string{"mysite_20240101120000", "mysite_pre-upgrade"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseSnapshotList() = %v, want %v", got, want)
	}

	if got := parseSnapshotList("No snapshots found for project mysite\n"); got != nil {
		t.Errorf("expected no names, got %v", got)
	}
}

func TestCheckFolderEmpty(t *testing.T) {
	dir := t.TempDir()
	empty, err := CheckFolderEmpty(dir)
	if err != nil || !empty {
		t.Errorf("empty dir: got %v, %v", empty, err)
	}

	empty, err = CheckFolderEmpty(dir + "/does-not-exist")
	if err != nil || !empty {
		t.Errorf("missing dir: got %v, %v", empty, err)
	}
}

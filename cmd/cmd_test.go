package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"syjonctl/pkg/config"

	"github.com/spf13/cobra"
)

const samplePage = "../pkg/syjon/testdata/plan.html"

// run executes the root command with args in a fresh home directory.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGroupsCommand(t *testing.T) {
	out, err := run(t, "groups", "-f", samplePage)
	if err != nil {
		t.Fatalf("groups failed: %v", err)
	}

	for _, want := range []string{"Laboratorium", "Ćwiczenia", "Wykład"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestScheduleCommand(t *testing.T) {
	out, err := run(t, "schedule", "-f", samplePage, "-g", "Laboratorium=1", "-g", "Ćwiczenia=2", "--save")
	if err != nil {
		t.Fatalf("schedule failed: %v", err)
	}

	for _, want := range []string{"Programowanie obiektowe", "13:00-15:00", "Thursday", "11:30-13:00"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Bazy danych") {
		t.Errorf("unselected group leaked into output:\n%s", out)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.SavedSelection["Laboratorium"] != 1 || cfg.SavedSelection["Ćwiczenia"] != 2 {
		t.Errorf("selection was not saved: %+v", cfg.SavedSelection)
	}
}

func TestExportCommand(t *testing.T) {
	output := filepath.Join(t.TempDir(), "plan")

	out, err := run(t, "export", "-f", samplePage, "-g", "Wykład=1", "-o", output, "--start", "2026-10-05", "--weeks", "10", "--tz", "UTC")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.Contains(out, "Successfully exported 2 weekly activities") {
		t.Errorf("unexpected output: %s", out)
	}

	data, err := os.ReadFile(output + ".ics")
	if err != nil {
		t.Fatalf("expected ICS file to be written: %v", err)
	}
	ics := string(data)
	for _, want := range []string{"DTSTART:20261007T100000Z", "DTSTART:20261009T080000Z", "DTSTART:20261209T100000Z"} {
		if !strings.Contains(ics, want) {
			t.Errorf("expected %q in ICS:\n%s", want, ics)
		}
	}
	if got := strings.Count(ics, "BEGIN:VEVENT"); got != 20 {
		t.Errorf("expected 2 activities over 10 weeks (20 events), got %d", got)
	}
}

func TestConfigCommand_ShowDoesNotWrite(t *testing.T) {
	out, err := run(t, "config", "--show")
	if err != nil {
		t.Fatalf("config --show failed: %v", err)
	}
	if !strings.Contains(out, "Timezone: "+config.DefaultTimezone) {
		t.Errorf("expected current settings in output:\n%s", out)
	}

	home, _ := os.UserHomeDir()
	if _, err := os.Stat(filepath.Join(home, ".syjonctl.json")); !os.IsNotExist(err) {
		t.Errorf("expected no config file to be written, stat error: %v", err)
	}
}

func TestReadPage_Missing(t *testing.T) {
	c := &cobra.Command{}
	addPageFlag(c)

	if _, err := readPage(c); err == nil {
		t.Errorf("expected error without --file")
	}

	c.Flags().Set("file", filepath.Join(t.TempDir(), "missing.html"))
	if _, err := readPage(c); err == nil {
		t.Errorf("expected error for a missing file")
	}
}

func TestReadPage_Stdin(t *testing.T) {
	c := &cobra.Command{}
	addPageFlag(c)
	c.SetIn(strings.NewReader("<html></html>"))
	c.Flags().Set("file", "-")

	html, err := readPage(c)
	if err != nil || html != "<html></html>" {
		t.Errorf("readPage from stdin = %q, %v", html, err)
	}
}

func TestSelection(t *testing.T) {
	c := &cobra.Command{}
	addSelectionFlag(c)

	if _, err := selection(c, &config.AppConfig{}); err == nil {
		t.Errorf("expected error with no flags and no saved selection")
	}

	saved := &config.AppConfig{SavedSelection: map[string]int{"Wykład": 1}}
	sel, err := selection(c, saved)
	if err != nil || sel["Wykład"] != 1 {
		t.Errorf("expected saved selection, got %v, %v", sel, err)
	}

	c.Flags().Set("group", "Laboratorium=2")
	sel, err = selection(c, saved)
	if err != nil || len(sel) != 1 || sel["Laboratorium"] != 2 {
		t.Errorf("expected flag selection to win, got %v, %v", sel, err)
	}
}

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Awesome-Austin/DataBrokerBreaker/internal/config"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/workflow"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	resultsDir string
	outputDir  string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	t.Setenv("HOME", filepath.Join(base, "home"))
	t.Setenv(config.DataDirEnv, "")

	env := &cliTestEnv{
		baseDir:    base,
		configPath: filepath.Join(base, "config.toml"),
		resultsDir: filepath.Join(base, "captured"),
		outputDir:  filepath.Join(base, "output"),
	}
	content := fmt.Sprintf(`[paths]
data_dir = %q
results_dir = %q
output_dir = %q
log_dir = %q

[collection]
sites = ["spokeo"]
decision_policy = "reject"
relative_policy = "reject"

[logging]
level = "error"
`,
		filepath.Join(base, "data"),
		env.resultsDir,
		env.outputDir,
		filepath.Join(base, "logs"),
	)
	writeFile(t, env.configPath, content)
	return env
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}

func TestRosterAddListRemove(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"roster", "add", "--given", "john", "--family", "smith", "--city", "austin", "--state", "tx", "--relatives"}, env.configPath)
	if err != nil {
		t.Fatalf("roster add: %v", err)
	}
	requireContains(t, out, "Added John Smith (ID 1)")

	if _, _, err := runCLI(t, []string{"roster", "add", "--given", "John", "--family", "Smith"}, env.configPath); err == nil {
		t.Fatal("expected duplicate add to fail")
	}

	out, _, err = runCLI(t, []string{"roster", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("roster list: %v", err)
	}
	requireContains(t, out, "John Smith")
	requireContains(t, out, "Austin, TX")
	requireContains(t, out, "yes")

	out, _, err = runCLI(t, []string{"roster", "remove", "1"}, env.configPath)
	if err != nil {
		t.Fatalf("roster remove: %v", err)
	}
	requireContains(t, out, "Removed person 1")

	_, _, err = runCLI(t, []string{"roster", "remove", "1"}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found error, got %v", err)
	}

	out, _, err = runCLI(t, []string{"roster", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("roster list: %v", err)
	}
	requireContains(t, out, "Roster is empty")
}

func TestRosterImportExport(t *testing.T) {
	env := setupCLITestEnv(t)
	csvPath := filepath.Join(env.baseDir, "people.csv")
	writeFile(t, csvPath, "givenName,familyName,addressLocality,addressRegion,checkRelatives\n"+
		"Jane,Doe,Reno,NV,true\n"+
		"Bob,Roe,Boise,ID,false\n"+
		"jane,doe,,,\n")

	out, _, err := runCLI(t, []string{"roster", "import", csvPath}, env.configPath)
	if err != nil {
		t.Fatalf("roster import: %v", err)
	}
	requireContains(t, out, "Imported 2 people (1 duplicate skipped)")

	out, _, err = runCLI(t, []string{"roster", "export", "-"}, env.configPath)
	if err != nil {
		t.Fatalf("roster export: %v", err)
	}
	requireContains(t, out, "givenName,middleName,familyName")
	requireContains(t, out, "Jane,,Doe,Reno,NV,true")

	target := filepath.Join(env.baseDir, "exports", "roster.csv")
	if _, _, err := runCLI(t, []string{"roster", "export", target}, env.configPath); err != nil {
		t.Fatalf("roster export file: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	requireContains(t, string(data), "Bob,,Roe,Boise,ID,false")
}

const capturedSmith = `[
  {"id": "r1", "name": "John Smith", "address": {"addressLocality": "Austin", "addressRegion": "TX"}},
  {"id": "r2", "name": "Bob Jones", "address": {"addressLocality": "Austin", "addressRegion": "TX"}}
]`

func TestCollectWritesResultsAndRemembersRejections(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"roster", "add", "--given", "John", "--family", "Smith", "--city", "Austin", "--state", "TX"}, env.configPath); err != nil {
		t.Fatalf("roster add: %v", err)
	}
	writeFile(t, filepath.Join(env.resultsDir, "spokeo", "Smith_John.json"), capturedSmith)

	out, _, err := runCLI(t, []string{"collect"}, env.configPath)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	requireContains(t, out, "spokeo")
	requireContains(t, out, "1 person reviewed, 0 relatives added")

	matches, err := filepath.Glob(filepath.Join(env.outputDir, "Smith_John", "spokeo_*.csv"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected one results file, got %v (err=%v)", matches, err)
	}

	out, _, err = runCLI(t, []string{"ignore", "show", "1"}, env.configPath)
	if err != nil {
		t.Fatalf("ignore show: %v", err)
	}
	requireContains(t, out, "r2")
	if strings.Contains(out, "r1") {
		t.Fatalf("accepted record must not be ignored:\n%s", out)
	}
}

func TestCheckWithoutSaveLeavesRosterEmpty(t *testing.T) {
	env := setupCLITestEnv(t)
	writeFile(t, filepath.Join(env.resultsDir, "spokeo", "Smith_John.json"), capturedSmith)

	out, _, err := runCLI(t, []string{"check", "--given", "john", "--family", "smith", "--city", "austin", "--state", "texas"}, env.configPath)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	requireContains(t, out, "John Smith")

	out, _, err = runCLI(t, []string{"roster", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("roster list: %v", err)
	}
	requireContains(t, out, "Roster is empty")

	if _, _, err := runCLI(t, []string{"check", "--given", "john"}, env.configPath); err == nil {
		t.Fatal("expected check without --family to fail")
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, "Sites: spokeo")

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected init without --overwrite to fail on existing file")
	}

	_, _, err = runCLI(t, []string{"--log-level", "loud", "roster", "list"}, env.configPath)
	if err == nil {
		t.Fatal("expected invalid --log-level to fail")
	}
}

func TestRenderSummary(t *testing.T) {
	summary := &workflow.Summary{
		RunID:    "run-1",
		Started:  time.Unix(0, 0),
		Finished: time.Unix(2, 0),
		People: []workflow.PersonSummary{{
			Name: "John Smith",
			Sites: []workflow.SiteSummary{
				{Site: "spokeo", Collected: 3, Accepted: 1, Rejected: 2},
				{Site: "mylife", Skipped: "site_no_records"},
			},
		}},
	}

	var buf bytes.Buffer
	printSummary(&buf, summary)
	out := buf.String()
	requireContains(t, out, "╭")
	requireContains(t, out, "skipped (site_no_records)")
	requireContains(t, out, "Run run-1: 1 person reviewed, 0 relatives added in 2s")

	buf.Reset()
	printSummary(&buf, &workflow.Summary{})
	requireContains(t, buf.String(), "Roster is empty")
}

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable([]string{"ID", "Name"}, [][]string{{"1"}, {"2", "Jane Doe"}}, []columnAlignment{alignRight}, false)
	requireContains(t, out, "Jane Doe")
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no color codes without a terminal:\n%s", out)
	}
	if renderTable(nil, nil, nil, false) != "" {
		t.Fatal("expected empty output without headers")
	}
}

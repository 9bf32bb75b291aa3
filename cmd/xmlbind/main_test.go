package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const tradeDoc = `<vMasterMessage><vMasterHeader>
<vMasterInstrument>SWAP</vMasterInstrument>
<vMasterTradeOriginID>EO-1</vMasterTradeOriginID>
<vMasterEntityCoperID>77</vMasterEntityCoperID>
<vMasterTrader>jdoe</vMasterTrader>
<vMasterDesk>Rates</vMasterDesk>
<vMasterExtra>x</vMasterExtra>
<vMasterDiary><vMasterDiaryEntry><diaryText>first</diaryText></vMasterDiaryEntry></vMasterDiary>
</vMasterHeader></vMasterMessage>`

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestRunPrintsBoundFields(t *testing.T) {
	path := writeDoc(t, "trade.xml", tradeDoc)
	var stdout, stderr bytes.Buffer
	if code := runWithArgs([]string{path}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, stderr:\n%s", code, stderr.String())
	}
	out := stdout.String()
	for _, want := range []string{
		"instrument: SWAP\n",
		"entity coper id: 77\n",
		"trade origin id: EO-1\n",
		"has trader: true\n",
		"desk: Rates\n",
		"diary entries: 1\n",
		"  [0] first\n",
		"1 unmapped",
		"time in microseconds: ",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("stdout missing %q:\n%s", want, out)
		}
	}
	if stderr.Len() != 0 {
		t.Fatalf("unexpected stderr:\n%s", stderr.String())
	}
}

func TestRunVerboseLogsUnmapped(t *testing.T) {
	path := writeDoc(t, "trade.xml", tradeDoc)
	var stdout, stderr bytes.Buffer
	if code := runWithArgs([]string{"-v", path}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(stderr.String(), "unmapped node") {
		t.Fatalf("stderr missing debug log:\n%s", stderr.String())
	}
}

func TestRunYAMLDocument(t *testing.T) {
	path := writeDoc(t, "trade.yaml", `
vMasterMessage:
  vMasterHeader:
    vMasterInstrument: FRA
    vMasterDiary:
      vMasterDiaryEntry:
        - diaryText: a
        - diaryText: b
`)
	var stdout, stderr bytes.Buffer
	if code := runWithArgs([]string{path}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, stderr:\n%s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "instrument: FRA\n") || !strings.Contains(stdout.String(), "diary entries: 2\n") {
		t.Fatalf("unexpected stdout:\n%s", stdout.String())
	}
}

func TestRunBindFailure(t *testing.T) {
	path := writeDoc(t, "bad.xml", `<vMasterMessage><vMasterHeader><vMasterEntityCoperID>x1</vMasterEntityCoperID></vMasterHeader></vMasterMessage>`)
	var stdout, stderr bytes.Buffer
	if code := runWithArgs([]string{path}, &stdout, &stderr); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	errOut := stderr.String()
	if !strings.Contains(errOut, "[malformed-value]") || !strings.Contains(errOut, "fails to bind") {
		t.Fatalf("stderr missing chain:\n%s", errOut)
	}
}

func TestRunParseFailure(t *testing.T) {
	path := writeDoc(t, "broken.xml", `<vMasterMessage>`)
	var stdout, stderr bytes.Buffer
	if code := runWithArgs([]string{path}, &stdout, &stderr); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "error reading document") {
		t.Fatalf("stderr = %q", stderr.String())
	}
}

func TestRunUsageErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := runWithArgs(nil, &stdout, &stderr); code != 2 {
		t.Fatalf("exit code without args = %d, want 2", code)
	}
	if !strings.Contains(stderr.String(), "exactly one document argument") {
		t.Fatalf("stderr = %q", stderr.String())
	}

	stderr.Reset()
	if code := runWithArgs([]string{"-nope"}, &stdout, &stderr); code != 2 {
		t.Fatalf("exit code for unknown flag = %d, want 2", code)
	}
}

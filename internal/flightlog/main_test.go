package flightlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const header = "Lp;Data;Start;Ladowanie;Szybowiec;Pilot;Instruktor;Wyciagarka;Zadanie;Cwiczenie;Lotnisko;Uwagi;A;B;C;Czas"

func row(pilot, instructor, code, sub, duration string) string {
	cols := make([]string, 16)
	cols[0] = "1"
	cols[5] = pilot
	cols[6] = instructor
	cols[8] = code
	cols[9] = sub
	cols[15] = duration
	return strings.Join(cols, ";")
}

func export(rows ...string) string {
	return strings.Join(append([]string{header}, rows...), "\n")
}

func writeExport(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

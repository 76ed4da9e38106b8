// Package conformance decodes and runs the gzip/JSON per-opcode fixture
// corpus against the x86 core, and reports pass/fail results.
package conformance

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// State is one side (initial or final) of a fixture case: the register
// values to seed or expect, and the memory cells to seed or expect.
// Regs is keyed by lowercase register name (ax, bx, cx, dx, cs, ss, ds,
// es, sp, bp, si, di, ip, flags); final.Regs holds only registers that
// changed, and final.RAM lists only memory cells with an expected
// post-state value.
type State struct {
	Regs map[string]uint16 `json:"regs"`
	RAM  [][2]int          `json:"ram"`
}

// Fixture is one (name, bytes, initial, final) conformance case.
type Fixture struct {
	Name    string   `json:"name"`
	Bytes   []uint8  `json:"bytes"`
	Initial State    `json:"initial"`
	Final   State    `json:"final"`
}

// LoadFixtureFile decodes a gzip-compressed JSON array of fixtures from
// a single file.
func LoadFixtureFile(path string) ([]Fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening fixture file %s: %w", path, err)
	}
	defer f.Close()

	return decodeFixtures(f)
}

func decodeFixtures(r io.Reader) ([]Fixture, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("decompressing fixture stream: %w", err)
	}
	defer gz.Close()

	var fixtures []Fixture
	if err := json.NewDecoder(gz).Decode(&fixtures); err != nil {
		return nil, fmt.Errorf("decoding fixture JSON: %w", err)
	}

	return fixtures, nil
}

// DiscoverFixtureFiles returns the sorted paths of every fixture file
// under path. If path names a single file, it is returned alone.
func DiscoverFixtureFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(p) == ".gz" {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking fixture directory %s: %w", path, err)
	}

	sort.Strings(files)
	return files, nil
}

package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeList(t *testing.T, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	data := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write word list: %v", err)
	}
	return path
}

func TestLoadWordLists(t *testing.T) {
	allPath := writeList(t, "all.txt", "APPLE", "apply", "angle", "mango")
	commonPath := writeList(t, "common.txt", "apple", "MANGO")

	c, err := Load(allPath, commonPath)
	if err != nil {
		t.Fatalf("load corpus: %v", err)
	}
	wantAll := []string{"apple", "apply", "angle", "mango"}
	if !reflect.DeepEqual(c.All(), wantAll) {
		t.Fatalf("expected all words %v, got %v", wantAll, c.All())
	}
	wantCommon := []string{"apple", "mango"}
	if !reflect.DeepEqual(c.Common(), wantCommon) {
		t.Fatalf("expected common words %v, got %v", wantCommon, c.Common())
	}
	if c.WordLength() != DefaultWordLength {
		t.Fatalf("expected word length %d, got %d", DefaultWordLength, c.WordLength())
	}
	if !c.IsCommon("APPLE") {
		t.Fatalf("expected IsCommon to be case-insensitive")
	}
	if c.IsCommon("angle") {
		t.Fatalf("expected angle to be rare")
	}
}

func TestLoadMalformedWord(t *testing.T) {
	allPath := writeList(t, "all.txt", "apple", "cat")
	commonPath := writeList(t, "common.txt", "apple")

	_, err := Load(allPath, commonPath)
	var malformed *MalformedWordError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedWordError, got %v", err)
	}
	if malformed.Path != allPath || malformed.Line != 2 || malformed.Word != "cat" {
		t.Fatalf("unexpected error details: %+v", malformed)
	}
	if !strings.Contains(err.Error(), "cat") || !strings.Contains(err.Error(), ":2:") {
		t.Fatalf("expected line number and offending word in message, got %q", err.Error())
	}
}

func TestLoadMalformedCommonWord(t *testing.T) {
	allPath := writeList(t, "all.txt", "apple")
	commonPath := writeList(t, "common.txt", "apples")

	_, err := Load(allPath, commonPath)
	var malformed *MalformedWordError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedWordError, got %v", err)
	}
	if malformed.Path != commonPath || malformed.Line != 1 || malformed.Word != "apples" {
		t.Fatalf("unexpected error details: %+v", malformed)
	}
}

func TestLoadMissingFile(t *testing.T) {
	commonPath := writeList(t, "common.txt", "apple")
	if _, err := Load(filepath.Join(t.TempDir(), "nope.txt"), commonPath); err == nil {
		t.Fatalf("expected error for missing word list")
	}
}

func TestLoadReportsRawLineNumbers(t *testing.T) {
	allPath := writeList(t, "all.txt", "apple", "", "toolong")
	commonPath := writeList(t, "common.txt", "apple")

	_, err := Load(allPath, commonPath)
	var malformed *MalformedWordError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedWordError, got %v", err)
	}
	if malformed.Line != 3 {
		t.Fatalf("expected blank lines to count toward line numbers, got line %d", malformed.Line)
	}
}

func TestLoadEmptyAllList(t *testing.T) {
	allPath := writeList(t, "all.txt", "", "")
	commonPath := writeList(t, "common.txt", "apple")

	if _, err := Load(allPath, commonPath); err == nil {
		t.Fatalf("expected error for empty word list")
	}
}

func TestLoadWithLength(t *testing.T) {
	allPath := writeList(t, "all.txt", "cat", "dog")
	commonPath := writeList(t, "common.txt", "cat")

	c, err := LoadWithLength(allPath, commonPath, 3)
	if err != nil {
		t.Fatalf("load corpus: %v", err)
	}
	if c.WordLength() != 3 {
		t.Fatalf("expected word length 3, got %d", c.WordLength())
	}
	if len(c.All()) != 2 || !c.IsCommon("cat") {
		t.Fatalf("unexpected corpus contents: %v", c.All())
	}
}

package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalogs maps a locale to its flattened messages keyed by dotted path.
type Catalogs map[string]map[string]string

// Locales returns the catalog locales in sorted order.
func (c Catalogs) Locales() []string {
	out := make([]string, 0, len(c))
	for locale := range c {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Loader reads "{locale}.json", "{locale}.yaml" or "{locale}.yml" files from
// the root of a file system. Nested objects become dotted keys.
type Loader struct {
	fsys fs.FS
	name string
}

// NewLoader constructs a loader over the catalog directory dir.
func NewLoader(dir string) *Loader {
	return &Loader{fsys: os.DirFS(dir), name: dir}
}

// NewFSLoader constructs a loader over fsys, for embedded catalogs.
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys, name: "fs"}
}

// Load parses every catalog file. Files with other extensions are ignored.
func (l *Loader) Load(ctx context.Context) (Catalogs, error) {
	if l == nil || l.fsys == nil {
		return nil, errors.New("i18n: loader source cannot be empty")
	}

	entries, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("i18n: read catalogs %q: %w", l.name, err)
	}

	catalogs := Catalogs{}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(path.Ext(entry.Name()))
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			continue
		}

		data, err := fs.ReadFile(l.fsys, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("i18n: read catalog %q: %w", entry.Name(), err)
		}
		messages, err := decodeCatalog(ext, data)
		if err != nil {
			return nil, fmt.Errorf("i18n: decode catalog %q: %w", entry.Name(), err)
		}

		locale := normalizeLocale(strings.TrimSuffix(entry.Name(), path.Ext(entry.Name())))
		if existing, ok := catalogs[locale]; ok {
			for key, value := range messages {
				existing[key] = value
			}
			continue
		}
		catalogs[locale] = messages
	}
	return catalogs, nil
}

func decodeCatalog(ext string, data []byte) (map[string]string, error) {
	var raw map[string]any
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	}
	out := map[string]string{}
	flatten("", raw, out)
	return out, nil
}

func flatten(prefix string, value any, out map[string]string) {
	switch typed := value.(type) {
	case map[string]any:
		for key, child := range typed {
			flatten(join(prefix, key), child, out)
		}
	case map[any]any:
		for key, child := range typed {
			flatten(join(prefix, fmt.Sprint(key)), child, out)
		}
	case []any:
		for idx, child := range typed {
			flatten(join(prefix, strconv.Itoa(idx)), child, out)
		}
	case nil:
	case string:
		if prefix != "" {
			out[prefix] = typed
		}
	default:
		if prefix != "" {
			out[prefix] = fmt.Sprint(typed)
		}
	}
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

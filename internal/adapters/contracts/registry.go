package contracts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/trebuchet-org/catapult/internal/domain"
	"github.com/trebuchet-org/catapult/internal/domain/config"
	"github.com/trebuchet-org/catapult/internal/usecase"
)

// maxSuggestions caps the "did you mean" list
const maxSuggestions = 3

// entry is an indexed artifact. The ABI is only parsed on lookup.
type entry struct {
	template    domain.ContractTemplate
	bytecodeHex string
}

// artifactFile covers both the Foundry and the Hardhat artifact layouts
type artifactFile struct {
	Format       string          `json:"_format"`
	ContractName string          `json:"contractName"`
	SourceName   string          `json:"sourceName"`
	ABI          json.RawMessage `json:"abi"`
	Bytecode     json.RawMessage `json:"bytecode"`
	Metadata     json.RawMessage `json:"metadata"`
}

// Registry indexes compiled contracts under the configured artifact directories
type Registry struct {
	projectRoot string
	dirs        []string
	log         *slog.Logger

	once      sync.Once
	indexErr  error
	mu        sync.RWMutex
	templates map[string]*entry   // key: "path:Name" or "Name" if unique
	byName    map[string][]*entry // key: contract name
}

// NewRegistry creates a registry for the project's build output
func NewRegistry(cfg *config.RuntimeConfig, log *slog.Logger) *Registry {
	return &Registry{
		projectRoot: cfg.ProjectRoot,
		dirs:        cfg.ArtifactDirs,
		log:         log,
	}
}

// Index walks the artifact directories and rebuilds the index
func (r *Registry) Index() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.templates = make(map[string]*entry)
	r.byName = make(map[string][]*entry)

	for _, dir := range r.dirs {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(r.projectRoot, dir)
		}
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			continue
		}

		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if d.Name() == "build-info" {
					return filepath.SkipDir
				}
				return nil
			}
			if filepath.Ext(path) != ".json" || strings.HasSuffix(path, ".dbg.json") {
				return nil
			}
			r.processArtifact(path)
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to index artifacts in %s: %w", dir, err)
		}
	}

	r.log.Debug("indexed contract artifacts", "count", len(r.byName), "dirs", r.dirs)
	return nil
}

// processArtifact adds one artifact file to the index. Files that are not
// deployable artifacts are skipped.
func (r *Registry) processArtifact(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		r.log.Debug("skipping unreadable artifact", "path", path, "error", err)
		return
	}

	var artifact artifactFile
	if err := json.Unmarshal(data, &artifact); err != nil || len(artifact.ABI) == 0 {
		return
	}

	bytecodeHex := decodeBytecodeField(artifact.Bytecode)
	if bytecodeHex == "" || bytecodeHex == "0x" {
		// Interfaces and abstract contracts
		return
	}

	e := &entry{bytecodeHex: bytecodeHex}
	e.template.ArtifactPath = path

	if strings.HasPrefix(artifact.Format, "hh-") {
		e.template.Source = domain.ArtifactSourceHardhat
		e.template.Name = artifact.ContractName
		e.template.SourcePath = artifact.SourceName
	} else {
		e.template.Source = domain.ArtifactSourceFoundry
		e.template.Name, e.template.SourcePath = foundryTarget(path, artifact.Metadata)
	}

	if e.template.Name == "" {
		return
	}

	fullKey := e.template.FullName()
	if lo.ContainsBy(r.byName[e.template.Name], func(o *entry) bool { return o.template.FullName() == fullKey }) {
		r.log.Debug("duplicate artifact ignored", "template", fullKey, "path", path)
		return
	}
	r.templates[fullKey] = e

	if existing, exists := r.byName[e.template.Name]; exists {
		r.byName[e.template.Name] = append(existing, e)
		// The bare name no longer identifies a single contract
		delete(r.templates, e.template.Name)
		return
	}
	r.byName[e.template.Name] = []*entry{e}
	r.templates[e.template.Name] = e
}

// GetTemplate resolves a contract name or "path:Name" to a deployable template
func (r *Registry) GetTemplate(ctx context.Context, name string) (*domain.ContractTemplate, error) {
	r.once.Do(func() { r.indexErr = r.Index() })
	if r.indexErr != nil {
		return nil, r.indexErr
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	e, exists := r.templates[name]
	if !exists {
		if matches := r.byName[name]; len(matches) > 1 {
			fullNames := lo.Map(matches, func(m *entry, _ int) string { return m.template.FullName() })
			sort.Strings(fullNames)
			return nil, &domain.AmbiguousTemplateError{Name: name, Matches: fullNames}
		}
		return nil, &domain.TemplateNotFoundError{Name: name, Suggestions: r.suggest(name)}
	}

	return e.load()
}

// suggest returns the indexed names closest to name
func (r *Registry) suggest(name string) []string {
	names := lo.Keys(r.byName)
	sort.Strings(names)

	matches := fuzzy.Find(name, names)
	if len(matches) == 0 {
		matches = fuzzy.Find(strings.ToLower(name), lo.Map(names, func(n string, _ int) string { return strings.ToLower(n) }))
	}

	suggestions := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		if len(suggestions) == maxSuggestions {
			break
		}
		suggestions = append(suggestions, names[m.Index])
	}
	return suggestions
}

// load parses the ABI and creation bytecode of an indexed artifact
func (e *entry) load() (*domain.ContractTemplate, error) {
	if strings.Contains(e.bytecodeHex, "__$") {
		return nil, fmt.Errorf("%s: %w", e.template.FullName(), domain.ErrUnlinkedBytecode)
	}

	data, err := os.ReadFile(e.template.ArtifactPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact %s: %w", e.template.ArtifactPath, err)
	}
	var artifact artifactFile
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("failed to parse artifact %s: %w", e.template.ArtifactPath, err)
	}

	parsed, err := abi.JSON(bytes.NewReader(artifact.ABI))
	if err != nil {
		return nil, fmt.Errorf("invalid ABI in %s: %w", e.template.ArtifactPath, err)
	}

	template := e.template
	template.ABI = parsed
	template.Bytecode = common.FromHex(e.bytecodeHex)
	return &template, nil
}

// decodeBytecodeField accepts Hardhat's "0x.." string and Foundry's {"object": "0x.."}
func decodeBytecodeField(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj struct {
		Object string `json:"object"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.Object
	}
	return ""
}

// foundryTarget returns the contract name and source path of a Foundry
// artifact, from metadata when present and from out/<File.sol>/<Name>.json otherwise
func foundryTarget(path string, rawMetadata json.RawMessage) (name, source string) {
	var metadata struct {
		Settings struct {
			CompilationTarget map[string]string `json:"compilationTarget"`
		} `json:"settings"`
	}
	if len(rawMetadata) > 0 && json.Unmarshal(rawMetadata, &metadata) == nil {
		for src, contract := range metadata.Settings.CompilationTarget {
			return contract, src
		}
	}
	return strings.TrimSuffix(filepath.Base(path), ".json"), filepath.Base(filepath.Dir(path))
}

// Ensure Registry implements the interface
var _ usecase.TemplateRegistry = (*Registry)(nil)

// Package dataset loads the cargo dataset from YAML files and serves it to
// the pipeline. A dataset directory holds system.yaml, flags.yaml,
// settlements.yaml and cargo.yaml; a built-in copy is embedded in the
// binary.
package dataset

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"cargo-market/core/types"
	"cargo-market/internal/errors"
)

//go:embed data/*.yaml
var builtin embed.FS

// Source is a DataSource backed by a dataset directory. Settlements, flags
// and system tuning are read eagerly; cargo types are read on first use.
type Source struct {
	fsys        fs.FS
	system      types.SystemConfig
	flags       map[string]types.FlagDefinition
	settlements map[string]types.SettlementProperties
	wealth      map[int]types.WealthTier
	logger      *zap.Logger

	cargoOnce sync.Once
	cargo     []types.CargoType
	cargoErr  error
}

// Option configures a Source
type Option func(*Source)

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Source) {
		s.logger = logger
	}
}

// Builtin loads the dataset embedded in the binary
func Builtin(opts ...Option) (*Source, error) {
	sub, err := fs.Sub(builtin, "data")
	if err != nil {
		return nil, errors.Internal("embedded dataset missing", err)
	}
	return Load(sub, opts...)
}

// Open loads the dataset in dir
func Open(dir string, opts ...Option) (*Source, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeConfig, err, "cannot open dataset directory %s", dir)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.TypeConfig, "dataset path %s is not a directory", dir)
	}
	return Load(os.DirFS(dir), opts...)
}

// Load reads and validates the eager parts of a dataset from fsys
func Load(fsys fs.FS, opts ...Option) (*Source, error) {
	s := &Source{
		fsys:   fsys,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.loadSystem(); err != nil {
		return nil, err
	}
	if err := s.loadFlags(); err != nil {
		return nil, err
	}
	if err := s.loadSettlements(); err != nil {
		return nil, err
	}

	s.logger.Debug("dataset loaded",
		zap.Int("flags", len(s.flags)),
		zap.Int("settlements", len(s.settlements)),
	)
	return s, nil
}

func (s *Source) loadSystem() error {
	s.system = types.DefaultSystemConfig()

	data, err := fs.ReadFile(s.fsys, SystemFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return errors.Dataset("failed to read "+SystemFile, err)
		}
		s.logger.Debug("no system tuning, using defaults")
	} else if err := yaml.Unmarshal(data, &s.system); err != nil {
		return errors.Dataset("failed to parse "+SystemFile, err)
	}

	s.system.MerchantCount.FlagMultipliers = lowerKeys(s.system.MerchantCount.FlagMultipliers)

	if errs := validateSystem(s.system); len(errs) > 0 {
		return errors.Dataset(SystemFile+" is invalid", joinErrors(errs))
	}
	return nil
}

func (s *Source) loadFlags() error {
	var file flagsFile
	if err := s.decode(FlagsFile, &file); err != nil {
		return err
	}

	s.flags = make(map[string]types.FlagDefinition, len(file.Flags))
	var errs []error
	for name, def := range file.Flags {
		key := strings.ToLower(strings.TrimSpace(name))
		for _, rule := range DefaultFlagRules() {
			if err := rule(key, def); err != nil {
				errs = append(errs, err)
			}
		}
		s.flags[key] = def
	}
	if len(errs) > 0 {
		return errors.Dataset(FlagsFile+" is invalid", joinErrors(errs))
	}
	return nil
}

func (s *Source) loadSettlements() error {
	var file settlementsFile
	if err := s.decode(SettlementsFile, &file); err != nil {
		return err
	}

	tiers := file.Wealth
	if len(tiers) == 0 {
		tiers = defaultWealthTiers()
	}
	s.wealth = make(map[int]types.WealthTier, len(tiers))
	for _, tier := range tiers {
		s.wealth[tier.Rating] = tier
	}

	s.settlements = make(map[string]types.SettlementProperties, len(file.Settlements))
	var errs []error
	for _, rec := range file.Settlements {
		props, err := rec.toProperties(s.wealth)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		for _, rule := range DefaultSettlementRules() {
			if err := rule(props); err != nil {
				errs = append(errs, err)
			}
		}
		key := strings.ToLower(props.Name)
		if _, dup := s.settlements[key]; dup {
			errs = append(errs, fmt.Errorf("duplicate settlement %q", props.Name))
			continue
		}
		s.settlements[key] = props
	}
	if len(errs) > 0 {
		return errors.Dataset(SettlementsFile+" is invalid", joinErrors(errs))
	}
	return nil
}

func (s *Source) loadCargo() ([]types.CargoType, error) {
	var file cargoFile
	if err := s.decode(CargoFile, &file); err != nil {
		return nil, err
	}

	cargo := make([]types.CargoType, 0, len(file.Cargo))
	seen := make(map[string]bool, len(file.Cargo))
	var errs []error
	for _, rec := range file.Cargo {
		c, err := rec.toCargoType()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		for _, rule := range DefaultCargoRules() {
			if err := rule(c); err != nil {
				errs = append(errs, err)
			}
		}
		key := strings.ToLower(c.Name)
		if seen[key] {
			errs = append(errs, fmt.Errorf("duplicate cargo %q", c.Name))
			continue
		}
		seen[key] = true
		cargo = append(cargo, c)
	}
	if len(errs) > 0 {
		return nil, errors.Dataset(CargoFile+" is invalid", joinErrors(errs))
	}

	s.logger.Debug("cargo types loaded", zap.Int("count", len(cargo)))
	return cargo, nil
}

func (s *Source) decode(name string, out interface{}) error {
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return errors.Dataset("failed to read "+name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return errors.Dataset("failed to parse "+name, err)
	}
	return nil
}

// SystemConfig returns the economic tuning
func (s *Source) SystemConfig() types.SystemConfig {
	return s.system
}

// SourceFlags returns flag definitions keyed by lowercase name
func (s *Source) SourceFlags() map[string]types.FlagDefinition {
	return s.flags
}

// CargoTypes returns every cargo type. The cargo file is read once; a
// failed read is remembered.
func (s *Source) CargoTypes(ctx context.Context) ([]types.CargoType, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Cancelled(err)
	}
	s.cargoOnce.Do(func() {
		s.cargo, s.cargoErr = s.loadCargo()
	})
	if s.cargoErr != nil {
		return nil, s.cargoErr
	}
	return append([]types.CargoType(nil), s.cargo...), nil
}

// SettlementProperties looks a settlement up by case-insensitive name
func (s *Source) SettlementProperties(name string) (*types.SettlementProperties, error) {
	props, ok := s.settlements[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.NotFound("settlement", name)
	}
	return &props, nil
}

// Settlements lists settlements sorted by name. A non-empty region keeps
// only settlements in that region.
func (s *Source) Settlements(region string) []types.SettlementProperties {
	out := make([]types.SettlementProperties, 0, len(s.settlements))
	for _, props := range s.settlements {
		if region != "" && !strings.EqualFold(props.Region, region) {
			continue
		}
		out = append(out, props)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// WealthTiers returns the wealth table ordered by rating
func (s *Source) WealthTiers() []types.WealthTier {
	out := make([]types.WealthTier, 0, len(s.wealth))
	for _, tier := range s.wealth {
		out = append(out, tier)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rating < out[j].Rating })
	return out
}

// WealthModifier returns the quantity modifier for rating, 1 if unknown
func (s *Source) WealthModifier(rating int) float64 {
	if tier, ok := s.wealth[rating]; ok {
		return tier.Modifier
	}
	return 1
}

// SeasonalPrice returns the unit price of cargo in season
func (s *Source) SeasonalPrice(cargo types.CargoType, season types.Season) decimal.Decimal {
	return cargo.PriceFor(season)
}

func lowerKeys(in map[string]float64) map[string]float64 {
	if in == nil {
		return nil
	}
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[strings.ToLower(k)] = v
	}
	return out
}

func joinErrors(errs []error) error {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	sort.Strings(msgs)
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}

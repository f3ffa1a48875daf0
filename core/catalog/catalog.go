// Package catalog loads the user-authored pricing catalog into an
// immutable PricingContext.
//
// The catalog is HCL: parts, stock-length rules, pricing rules, finish
// and glass price tables, and global settings. Loading it once per run
// is what keeps the engine free of per-line lookups.
package catalog

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"shopcost/core/types"
	"shopcost/internal/errors"
	"shopcost/internal/logging"
)

type settingsBlock struct {
	PricePerLb    *float64 `hcl:"price_per_lb,optional"`
	DefaultKerf   *float64 `hcl:"default_kerf,optional"`
	CostingMethod *string  `hcl:"costing_method,optional"`
	Finish        *string  `hcl:"finish,optional"`
}

type partBlock struct {
	PartNumber    string   `hcl:"part_number,label"`
	Type          string   `hcl:"type"`
	Description   *string  `hcl:"description,optional"`
	Cost          *float64 `hcl:"cost,optional"`
	SalePrice     *float64 `hcl:"sale_price,optional"`
	WeightPerFoot *float64 `hcl:"weight_per_ft,optional"`
	PerimeterIn   *float64 `hcl:"perimeter_in,optional"`
	MillFinish    *bool    `hcl:"mill_finish,optional"`
	GlassType     *string  `hcl:"glass_type,optional"`
	Unit          *string  `hcl:"unit,optional"`
}

type stockRuleBlock struct {
	Part          string   `hcl:"part"`
	StockLength   float64  `hcl:"stock_length"`
	BasePrice     *float64 `hcl:"base_price,optional"`
	MinWidth      *float64 `hcl:"min_width,optional"`
	MaxWidth      *float64 `hcl:"max_width,optional"`
	MinHeight     *float64 `hcl:"min_height,optional"`
	MaxHeight     *float64 `hcl:"max_height,optional"`
	Active        *bool    `hcl:"active,optional"`
	Formula       *string  `hcl:"formula,optional"`
	PiecesPerUnit *float64 `hcl:"pieces_per_unit,optional"`
}

type pricingRuleBlock struct {
	Part      string   `hcl:"part"`
	BasePrice *float64 `hcl:"base_price,optional"`
	Formula   *string  `hcl:"formula,optional"`
	Active    *bool    `hcl:"active,optional"`
}

type finishBlock struct {
	Name        string  `hcl:"name,label"`
	CostPerSqFt float64 `hcl:"cost_per_sqft"`
}

type glassBlock struct {
	Name         string  `hcl:"name,label"`
	PricePerSqFt float64 `hcl:"price_per_sqft"`
}

type catalogFile struct {
	Settings     *settingsBlock     `hcl:"settings,block"`
	Parts        []partBlock        `hcl:"part,block"`
	StockRules   []stockRuleBlock   `hcl:"stock_rule,block"`
	PricingRules []pricingRuleBlock `hcl:"pricing_rule,block"`
	Finishes     []finishBlock      `hcl:"finish,block"`
	GlassTypes   []glassBlock       `hcl:"glass,block"`
}

// Load reads a catalog file, or every *.hcl file under a directory, and
// builds the pricing context.
func Load(path string) (*types.PricingContext, error) {
	files, err := catalogFiles(path)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.Newf(errors.TypeCatalog, "no catalog files at %s", path)
	}

	parser := hclparse.NewParser()
	var merged catalogFile
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return nil, errors.Catalog("failed to read catalog file", err).WithContext("file", file)
		}
		hclFile, diags := parser.ParseHCL(src, file)
		if diags.HasErrors() {
			return nil, errors.Catalog(diagsMessage(diags), diags).WithContext("file", file)
		}
		var parsed catalogFile
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &parsed); diags.HasErrors() {
			return nil, errors.Catalog(diagsMessage(diags), diags).WithContext("file", file)
		}
		if parsed.Settings != nil {
			merged.Settings = parsed.Settings
		}
		merged.Parts = append(merged.Parts, parsed.Parts...)
		merged.StockRules = append(merged.StockRules, parsed.StockRules...)
		merged.PricingRules = append(merged.PricingRules, parsed.PricingRules...)
		merged.Finishes = append(merged.Finishes, parsed.Finishes...)
		merged.GlassTypes = append(merged.GlassTypes, parsed.GlassTypes...)
	}

	ctx, err := build(&merged)
	if err != nil {
		return nil, err
	}
	logging.Info("catalog loaded",
		zap.Int("parts", len(ctx.Parts)),
		zap.Int("stock_rule_parts", len(ctx.StockRules)),
		zap.Int("finishes", len(ctx.FinishPrices)),
		zap.Int("glass_types", len(ctx.GlassPrices)))
	return ctx, nil
}

func catalogFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Catalog("catalog path not accessible", err).WithContext("path", path)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.Walk(path, func(p string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fi.IsDir() && strings.HasSuffix(p, ".hcl") {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Catalog("failed to walk catalog directory", err).WithContext("path", path)
	}
	return files, nil
}

func build(src *catalogFile) (*types.PricingContext, error) {
	ctx := &types.PricingContext{
		Parts:        make(map[string]types.PartRecord, len(src.Parts)),
		StockRules:   make(map[string][]types.StockLengthRule),
		PricingRules: make(map[string]types.PricingRule),
		FinishPrices: make(map[string]decimal.Decimal, len(src.Finishes)),
		GlassPrices:  make(map[string]decimal.Decimal, len(src.GlassTypes)),
	}

	for _, p := range src.Parts {
		record, err := buildPart(p)
		if err != nil {
			return nil, err
		}
		if _, dup := ctx.Parts[record.PartNumber]; dup {
			return nil, errors.Newf(errors.TypeCatalog, "duplicate part %q", record.PartNumber)
		}
		ctx.Parts[record.PartNumber] = record
	}

	for _, r := range src.StockRules {
		rule, err := buildStockRule(r, ctx)
		if err != nil {
			return nil, err
		}
		ctx.StockRules[rule.PartNumber] = append(ctx.StockRules[rule.PartNumber], rule)
	}

	for _, r := range src.PricingRules {
		if _, ok := ctx.Parts[r.Part]; !ok {
			logging.Warn("pricing rule references unknown part", zap.String("part", r.Part))
		}
		ctx.PricingRules[r.Part] = types.PricingRule{
			PartNumber: r.Part,
			BasePrice:  decimalOf(r.BasePrice),
			Formula:    stringOf(r.Formula),
			IsActive:   boolOr(r.Active, true),
		}
	}

	for _, f := range src.Finishes {
		if f.CostPerSqFt < 0 {
			return nil, errors.Newf(errors.TypeCatalog, "finish %q has negative cost_per_sqft", f.Name)
		}
		ctx.FinishPrices[f.Name] = decimal.NewFromFloat(f.CostPerSqFt)
	}

	for _, g := range src.GlassTypes {
		if g.PricePerSqFt < 0 {
			return nil, errors.Newf(errors.TypeCatalog, "glass %q has negative price_per_sqft", g.Name)
		}
		ctx.GlassPrices[g.Name] = decimal.NewFromFloat(g.PricePerSqFt)
	}

	if s := src.Settings; s != nil {
		if s.PricePerLb != nil {
			ctx.PricePerLb = decimal.NewFromFloat(*s.PricePerLb)
		}
		if s.DefaultKerf != nil {
			ctx.DefaultKerf = *s.DefaultKerf
		}
		if s.Finish != nil {
			ctx.Finish = *s.Finish
		}
		if s.CostingMethod != nil {
			method, ok := types.ParseCostingMethod(*s.CostingMethod)
			if !ok {
				return nil, errors.Newf(errors.TypeCatalog, "unknown costing_method %q", *s.CostingMethod)
			}
			ctx.DefaultMethod = method
		}
	}
	return ctx, nil
}

func buildPart(p partBlock) (types.PartRecord, error) {
	partType := types.PartType(p.Type)
	switch partType {
	case types.PartTypeExtrusion, types.PartTypeCutStock, types.PartTypeHardware,
		types.PartTypeFastener, types.PartTypeGlass, types.PartTypePackaging,
		types.PartTypeOption, types.PartTypeOther:
	default:
		return types.PartRecord{}, errors.Newf(errors.TypeCatalog,
			"part %q has unknown type %q", p.PartNumber, p.Type)
	}
	if p.Cost != nil && *p.Cost < 0 {
		return types.PartRecord{}, errors.Newf(errors.TypeCatalog,
			"part %q has negative cost", p.PartNumber)
	}

	record := types.PartRecord{
		PartNumber:    p.PartNumber,
		Description:   stringOf(p.Description),
		Type:          partType,
		Cost:          decimalOf(p.Cost),
		WeightPerFoot: floatOf(p.WeightPerFoot),
		PerimeterIn:   floatOf(p.PerimeterIn),
		MillFinish:    boolOr(p.MillFinish, false),
		GlassType:     stringOf(p.GlassType),
		Unit:          stringOf(p.Unit),
	}
	if p.SalePrice != nil {
		sale := decimal.NewFromFloat(*p.SalePrice)
		record.SalePrice = &sale
	}
	return record, nil
}

func buildStockRule(r stockRuleBlock, ctx *types.PricingContext) (types.StockLengthRule, error) {
	if r.StockLength <= 0 {
		return types.StockLengthRule{}, errors.Newf(errors.TypeCatalog,
			"stock rule for %q has non-positive stock_length", r.Part)
	}
	if _, ok := ctx.Parts[r.Part]; !ok {
		return types.StockLengthRule{}, errors.Newf(errors.TypeCatalog,
			"stock rule references unknown part %q", r.Part)
	}
	return types.StockLengthRule{
		PartNumber:    r.Part,
		StockLength:   r.StockLength,
		BasePrice:     decimalOf(r.BasePrice),
		MinWidth:      r.MinWidth,
		MaxWidth:      r.MaxWidth,
		MinHeight:     r.MinHeight,
		MaxHeight:     r.MaxHeight,
		IsActive:      boolOr(r.Active, true),
		Formula:       stringOf(r.Formula),
		PiecesPerUnit: r.PiecesPerUnit,
	}, nil
}

func diagsMessage(diags hcl.Diagnostics) string {
	if len(diags) == 0 {
		return "catalog parse error"
	}
	return diags[0].Error()
}

func stringOf(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatOf(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func decimalOf(f *float64) decimal.Decimal {
	if f == nil {
		return decimal.Zero
	}
	return decimal.NewFromFloat(*f)
}

func boolOr(b *bool, fallback bool) bool {
	if b == nil {
		return fallback
	}
	return *b
}

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/iancoleman/strcase"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/omise-client/internal/constants"
	"github.com/fivetwenty-io/omise-client/pkg/omise"
)

var outputFormats = []string{constants.FormatTable, constants.FormatJSON, constants.FormatYAML}

// amountFields hold integers in the smallest currency unit.
var amountFields = []string{"amount", "available", "total", "fee"}

// zeroDecimalCurrencies have no minor unit.
var zeroDecimalCurrencies = []string{"jpy"}

func outputFormat() string {
	format := viper.GetString(keyOutput)
	if format == "" {
		return constants.FormatTable
	}

	return format
}

func validateOutputFormat() error {
	if !slices.Contains(outputFormats, outputFormat()) {
		return constants.ErrInvalidOutputFormat
	}

	return nil
}

func writeJSON(out io.Writer, value any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

	return encoder.Encode(value)
}

func writeYAML(out io.Writer, value any) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(constants.JSONIndentSize)

	defer func() { _ = encoder.Close() }()

	return encoder.Encode(value)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	return keys
}

// rawParamGroups hold user-defined keys that are sent exactly as typed.
var rawParamGroups = map[string]bool{"metadata": true}

// parseParams turns key=value pairs into request parameters. Dotted keys
// build groups (card.name=x becomes card[name]=x). Field names written in
// camel case are converted to snake case; keys inside a raw group such as
// metadata are kept verbatim.
func parseParams(pairs []string) (omise.Params, error) {
	params := omise.Params{}

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidParamFormat, pair)
		}

		segments := strings.Split(key, ".")
		raw := false

		for i, segment := range segments {
			segment = strings.TrimSpace(segment)
			if segment == "" {
				return nil, fmt.Errorf("%w: %q", constants.ErrEmptyParamKey, pair)
			}

			if !raw {
				segment = fieldName(segment)
				raw = rawParamGroups[segment]
			}

			segments[i] = segment
		}

		if err := setParam(params, segments, value); err != nil {
			return nil, fmt.Errorf("%w: %q", err, key)
		}
	}

	return params, nil
}

// fieldName converts a camel case field name to snake case. Names without
// upper case letters are already in wire form and are left alone.
func fieldName(segment string) string {
	if strings.ToLower(segment) == segment {
		return segment
	}

	return strcase.ToSnake(segment)
}

func setParam(group map[string]any, segments []string, value string) error {
	name := segments[0]

	if len(segments) == 1 {
		if _, exists := group[name]; exists {
			if _, isGroup := group[name].(map[string]any); isGroup {
				return constants.ErrConflictingParamKey
			}
		}

		group[name] = value

		return nil
	}

	child, exists := group[name]
	if !exists {
		child = map[string]any{}
		group[name] = child
	}

	nested, ok := child.(map[string]any)
	if !ok {
		return constants.ErrConflictingParamKey
	}

	return setParam(nested, segments[1:], value)
}

// parseDate accepts any layout dateparse understands, e.g. 2014-10-01 or
// "Oct 1, 2014 07:00". Dates without a zone are UTC.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	parsed, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %w", constants.ErrInvalidDate, value, err)
	}

	return parsed, nil
}

// formatAmount renders a smallest-unit amount in major units, e.g. 100025
// thb is "1000.25 THB".
func formatAmount(amount int64, currency string) string {
	exponent := int32(constants.DefaultCurrencyExponent)
	if slices.Contains(zeroDecimalCurrencies, strings.ToLower(currency)) {
		exponent = constants.ZeroDecimalCurrencyExponent
	}

	formatted := decimal.New(amount, -exponent).StringFixed(exponent)
	if currency == "" {
		return formatted
	}

	return formatted + " " + strings.ToUpper(currency)
}

// cellValue renders one attribute for table output.
func cellValue(obj *omise.Object, name string) string {
	value, err := obj.Get(name)
	if err != nil || value.IsNull() {
		return constants.NotAvailable
	}

	if slices.Contains(amountFields, name) {
		if amount, ok := value.Int(); ok {
			currency, _ := obj.GetString("currency")

			return formatAmount(amount, currency)
		}
	}

	switch value.Type() {
	case omise.TypeString:
		s, _ := value.Str()

		return s
	case omise.TypeObject:
		nested, _ := value.Object()
		if id := nested.ID(); id != "" {
			return id
		}

		return nested.Kind().Name
	case omise.TypeCollection:
		coll, _ := value.Collection()

		return fmt.Sprintf("%d of %d", coll.Len(), coll.Total)
	case omise.TypeRaw:
		raw, err := json.Marshal(value.Interface())
		if err != nil {
			return value.String()
		}

		return string(raw)
	default:
		return value.String()
	}
}

// renderObject prints a single resource.
func renderObject(cmd *cobra.Command, obj *omise.Object) error {
	out := cmd.OutOrStdout()

	switch outputFormat() {
	case constants.FormatJSON:
		return writeJSON(out, obj.Map())
	case constants.FormatYAML:
		return writeYAML(out, obj.Map())
	}

	table := tablewriter.NewWriter(out)
	table.Header("Attribute", "Value")

	for _, name := range obj.Attributes() {
		_ = table.Append(name, cellValue(obj, name))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderCollection prints one page of resources with the given columns.
func renderCollection(cmd *cobra.Command, coll *omise.Collection, columns []string) error {
	out := cmd.OutOrStdout()

	switch outputFormat() {
	case constants.FormatJSON:
		return writeJSON(out, coll.Map())
	case constants.FormatYAML:
		return writeYAML(out, coll.Map())
	}

	objects, err := coll.Materialize()
	if err != nil {
		return fmt.Errorf("failed to read list: %w", err)
	}

	header := make([]any, 0, len(columns))
	for _, column := range columns {
		header = append(header, strings.ToUpper(strcase.ToDelimited(column, ' ')))
	}

	table := tablewriter.NewWriter(out)
	table.Header(header...)

	for _, obj := range objects {
		row := make([]string, 0, len(columns))
		for _, column := range columns {
			row = append(row, cellValue(obj, column))
		}

		_ = table.Append(row)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	_, err = fmt.Fprintf(out, "Showing %d-%d of %d\n", coll.Offset+min(1, len(objects)), coll.Offset+len(objects), coll.Total)

	return err
}

// listFlags holds the paging flags shared by list commands.
type listFlags struct {
	offset int
	limit  int
	from   string
	to     string
	order  string
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.offset, "offset", 0, "number of records to skip")
	cmd.Flags().IntVar(&f.limit, "limit", constants.DefaultPageSize, "records per page (max "+strconv.Itoa(constants.MaxPageSize)+")")
	cmd.Flags().StringVar(&f.from, "from", "", "only records created at or after this date")
	cmd.Flags().StringVar(&f.to, "to", "", "only records created before this date")
	cmd.Flags().StringVar(&f.order, "order", "", "chronological or reverse_chronological")
}

func (f *listFlags) options() (*omise.ListOptions, error) {
	from, err := parseDate(f.from)
	if err != nil {
		return nil, err
	}

	to, err := parseDate(f.to)
	if err != nil {
		return nil, err
	}

	return &omise.ListOptions{
		Offset: f.offset,
		Limit:  f.limit,
		From:   from,
		To:     to,
		Order:  f.order,
	}, nil
}

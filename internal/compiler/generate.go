package compiler

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/feemodel-ml/feemodel/internal/matrix"
	"github.com/feemodel-ml/feemodel/internal/shapes"
)

const generatedHeader = "// Code generated by feemodelgen. DO NOT EDIT.\n"

// Generate emits the compiled model constructors as Go source.
//
// Weights are embedded as escaped little-endian byte blobs and rebuilt with
// matrix.MustFromBlob, so the floats in the generated program are bit-for-bit
// the floats of the trained artifact; no value ever passes through a decimal
// representation. Normalization stats are small and emitted as shortest
// round-trip decimal literals, which reparse to the identical float32.
func Generate(w io.Writer, pkg string, compiled []*Compiled, reg *shapes.Registry) error {
	var b bytes.Buffer
	b.WriteString(generatedHeader)
	b.WriteString("\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	b.WriteString("import (\n")
	b.WriteString("\t\"github.com/feemodel-ml/feemodel/internal/matrix\"\n")
	b.WriteString("\t\"github.com/feemodel-ml/feemodel/internal/model\"\n")
	b.WriteString("\t\"github.com/feemodel-ml/feemodel/internal/shapes\"\n")
	b.WriteString(")\n\n")

	b.WriteString("func init() {\n")
	for _, d := range reg.All() {
		fmt.Fprintf(&b, "\tshapes.Register(%d)\n", d)
	}
	b.WriteString("\tshapes.Seal()\n")
	b.WriteString("}\n")

	for _, c := range compiled {
		if err := writeModel(&b, c); err != nil {
			return err
		}
	}

	_, err := w.Write(b.Bytes())
	return err
}

func writeModel(b *bytes.Buffer, c *Compiled) error {
	rec := c.Record
	exported := exportedName(c.Name)
	prefix := blobPrefix(c.Name)
	i, n, o := rec.InputSize(), rec.HiddenSize(), rec.OutputSize()

	fmt.Fprintf(b, "\n// %s returns the compiled %q model.\n", exported, c.Name)
	fmt.Fprintf(b, "// Dimensions: input %d, hidden %d, output %d; alpha %s.\n",
		i, n, o, formatFloat(rec.Alpha))
	fmt.Fprintf(b, "func %s() *model.Model {\n", exported)
	b.WriteString("\treturn model.New(model.Params{\n")

	b.WriteString("\t\tMean: map[string]float32{\n")
	writeStats(b, rec.Mean)
	b.WriteString("\t\t},\n")
	b.WriteString("\t\tStd: map[string]float32{\n")
	writeStats(b, rec.Std)
	b.WriteString("\t\t},\n")

	b.WriteString("\t\tFields: []string{\n")
	for _, f := range rec.Fields {
		fmt.Fprintf(b, "\t\t\t%q,\n", f)
	}
	b.WriteString("\t\t},\n")

	pairs := [][2]string{
		{"Alpha", formatFloat(rec.Alpha)},
		{"L0Kernel", fmt.Sprintf("matrix.MustFromBlob(%sL0Kernel, %d, %d)", prefix, n, i)},
		{"L0Bias", fmt.Sprintf("matrix.MustFromBlob(%sL0Bias, %d, 1)", prefix, n)},
		{"L1Kernel", fmt.Sprintf("matrix.MustFromBlob(%sL1Kernel, %d, %d)", prefix, n, n)},
		{"L1Bias", fmt.Sprintf("matrix.MustFromBlob(%sL1Bias, %d, 1)", prefix, n)},
		{"L2Kernel", fmt.Sprintf("matrix.MustFromBlob(%sL2Kernel, %d, %d)", prefix, o, n)},
		{"L2Bias", fmt.Sprintf("matrix.MustFromBlob(%sL2Bias, %d, 1)", prefix, o)},
	}
	writeAligned(b, "\t\t", pairs)

	b.WriteString("\t})\n")
	b.WriteString("}\n\n")

	b.WriteString("const (\n")
	writeBlob(b, prefix+"L0Kernel", rec.L0Kernel)
	writeBlob(b, prefix+"L0Bias", rec.L0Bias)
	writeBlob(b, prefix+"L1Kernel", rec.L1Kernel)
	writeBlob(b, prefix+"L1Bias", rec.L1Bias)
	writeBlob(b, prefix+"L2Kernel", rec.L2Kernel)
	writeBlob(b, prefix+"L2Bias", rec.L2Bias)
	b.WriteString(")\n")
	return nil
}

// writeStats emits a normalization map with sorted keys.
func writeStats(b *bytes.Buffer, stats map[string]float32) {
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([][2]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, [2]string{strconv.Quote(k), formatFloat(stats[k])})
	}
	writeAligned(b, "\t\t\t", pairs)
}

// writeAligned emits key/value pairs with values padded to a common column,
// matching gofmt's composite literal alignment.
func writeAligned(b *bytes.Buffer, indent string, pairs [][2]string) {
	width := 0
	for _, p := range pairs {
		if len(p[0]) > width {
			width = len(p[0])
		}
	}
	for _, p := range pairs {
		pad := strings.Repeat(" ", width-len(p[0])+1)
		fmt.Fprintf(b, "%s%s:%s%s,\n", indent, p[0], pad, p[1])
	}
}

// writeBlob emits a weight tensor as an escaped little-endian byte string,
// sixteen floats' worth of bytes per line.
func writeBlob(b *bytes.Buffer, name string, m *matrix.Matrix) {
	data := m.Data()
	raw := make([]byte, len(data)*4)
	for i, v := range data {
		binary.LittleEndian.PutUint32(raw[i*4:], math.Float32bits(v))
	}

	fmt.Fprintf(b, "\t%s = \"\" +\n", name)
	const chunk = 64
	for off := 0; off < len(raw); off += chunk {
		end := off + chunk
		if end > len(raw) {
			end = len(raw)
		}
		b.WriteString("\t\t\"")
		for _, c := range raw[off:end] {
			fmt.Fprintf(b, "\\x%02x", c)
		}
		if end == len(raw) {
			b.WriteString("\"\n")
		} else {
			b.WriteString("\" +\n")
		}
	}
}

// formatFloat renders the shortest decimal that reparses to the same float32.
func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// exportedName maps a model name to its constructor name:
// "test_model" becomes "TestModel".
func exportedName(name string) string {
	parts := strings.Split(name, "_")
	var sb strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		sb.WriteString(strings.ToUpper(p[:1]))
		sb.WriteString(p[1:])
	}
	return sb.String()
}

// blobPrefix maps a model name to the prefix of its weight constants:
// "test_model" becomes "testModel".
func blobPrefix(name string) string {
	exported := exportedName(name)
	return strings.ToLower(exported[:1]) + exported[1:]
}

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spreadcal/entities"
	"spreadcal/pkg/calibration"
)

const chartsYAML = `devices:
  - id: mini
    name: Mini Broadcast
    kind: broadcast
    settings:
      2: 4
      4: 8
  - id: dial
    name: Letter Dial
    settings:
      1: A
      3: C
`

const productsYAML = `products:
  - id: feed
    name: Lawn Feed
    category: fertilizer
    application_rate: {base: 3, package_size: 10}
  - id: fescue
    name: Tall Fescue
    brand: Acme
    category: seed
    application_rate: {base: 6}
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	charts := filepath.Join(dir, "charts.yaml")
	products := filepath.Join(dir, "products.yaml")
	require.NoError(t, os.WriteFile(charts, []byte(chartsYAML), 0o644))
	require.NoError(t, os.WriteFile(products, []byte(productsYAML), 0o644))

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--charts", charts, "--products", products}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestDevicesCmd(t *testing.T) {
	out, err := run(t, "devices")
	require.NoError(t, err)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "mini")
	assert.Contains(t, out, "Letter Dial")
}

func TestResolveCmd(t *testing.T) {
	out, err := run(t, "resolve", "--device", "mini", "--rate", "3")
	require.NoError(t, err)
	var res calibration.Resolution
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, calibration.Interpolated, res.Confidence)
	assert.Equal(t, calibration.Number(6), res.Setting)

	out, err = run(t, "resolve", "--device", "dial", "--rate", "2")
	require.NoError(t, err)
	assert.Contains(t, out, `"setting": "A"`)

	_, err = run(t, "resolve", "--device", "ghost", "--rate", "2")
	assert.ErrorContains(t, err, "unknown device")
}

func TestCalcCmd(t *testing.T) {
	out, err := run(t, "calc", "--device", "mini", "--product", "feed", "--area", "4000")
	require.NoError(t, err)
	var res entities.ApplicationResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "feed", res.ProductID)
	assert.Equal(t, 12.0, res.TotalMassNeeded)
	require.NotNil(t, res.PackagesNeeded)
	assert.Equal(t, 2, *res.PackagesNeeded)

	out, err = run(t, "calc", "--device", "mini", "--rate", "4")
	require.NoError(t, err)
	assert.Contains(t, out, `"confidence": "exact"`)

	_, err = run(t, "calc", "--device", "mini")
	assert.ErrorContains(t, err, "exactly one of")

	_, err = run(t, "calc", "--device", "mini", "--rate", "2", "--product", "feed")
	assert.ErrorContains(t, err, "exactly one of")

	_, err = run(t, "calc", "--device", "mini", "--product", "nope")
	assert.ErrorContains(t, err, "unknown product")

	_, err = run(t, "calc", "--device", "mini", "--rate", "2", "--area", "0")
	assert.Error(t, err)
}

func TestProductsCmd(t *testing.T) {
	out, err := run(t, "products")
	require.NoError(t, err)
	assert.Contains(t, out, "feed")
	assert.Contains(t, out, "fescue")

	out, err = run(t, "products", "--category", "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Tall Fescue")
	assert.NotContains(t, out, "Lawn Feed")

	out, err = run(t, "products", "-q", "acme", "--category", "fertilizer")
	require.NoError(t, err)
	assert.NotContains(t, out, "fescue")

	_, err = run(t, "products", "--category", "rocks")
	assert.ErrorContains(t, err, "unknown category")
}

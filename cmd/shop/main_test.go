package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/nikolayk812/testshop/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderFile = `
currency = "EUR"

[user]
first_name = "Ada"
last_name = "Lovelace"
birth_date = "1999-12-25"

[discount]
kind = "flat"
value = 3.0

[[products]]
id = 1
name = "Widget"
price = 10.0
quantity = 2.0

[[products]]
id = 2
name = "Gadget"
price = 5.0
quantity = 4.0
`

func TestApp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shop.toml")
	require.NoError(t, os.WriteFile(path, []byte(orderFile), 0o600))

	tests := []struct {
		name      string
		args      []string
		want      string
		wantError error
	}{
		{
			name: "list: ok",
			args: []string{"list"},
			want: `Product{ID: 1, Name: "Widget", Price: 10, Quantity: 2}` + "\n" +
				`Product{ID: 2, Name: "Gadget", Price: 5, Quantity: 4}` + "\n",
		},
		{
			name: "total: ok",
			args: []string{"total"},
			want: "EUR 40.00\n",
		},
		{
			name: "price: ok",
			args: []string{"price"},
			want: "subtotal: EUR 40.00\ndiscount: EUR 3.00\ntotal:    EUR 37.00\n",
		},
		{
			name: "price after remove: ok",
			args: []string{"price", "--remove", "2"},
			want: "subtotal: EUR 20.00\ndiscount: EUR 3.00\ntotal:    EUR 17.00\n",
		},
		{
			name:      "price after removing unknown product: not found",
			args:      []string{"price", "--remove", "42"},
			wantError: domain.ErrProductNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			args := append([]string{"shop", "--config", path, "--log-level", "error"}, tt.args...)
			err := newApp(&stdout, &stderr).Run(t.Context(), args)
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.want, stdout.String())
		})
	}
}

const overflowingOrderFile = `
currency = "EUR"

[user]
first_name = "Ada"

[[products]]
id = 1
name = "Yacht"
price = 1e308
quantity = 10.0
`

func TestApp_TotalOverflow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shop.toml")
	require.NoError(t, os.WriteFile(path, []byte(overflowingOrderFile), 0o600))

	for _, command := range []string{"total", "price"} {
		t.Run(command, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			err := newApp(&stdout, &stderr).Run(t.Context(), []string{"shop", "--config", path, command})
			require.ErrorContains(t, err, "cart total: amount[+Inf] is not finite")
			assert.Empty(t, stdout.String())
		})
	}
}

func TestApp_NotFiniteOrderFile(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		wantError string
	}{
		{
			name:      "NaN price: error",
			data:      "[user]\nfirst_name = \"Ada\"\n[[products]]\nid = 1\nprice = nan\nquantity = 1.0\n",
			wantError: "price[NaN] is not finite",
		},
		{
			name:      "infinite quantity: error",
			data:      "[user]\nfirst_name = \"Ada\"\n[[products]]\nid = 1\nprice = 1.0\nquantity = inf\n",
			wantError: "quantity[+Inf] is not finite",
		},
		{
			name:      "NaN discount: error",
			data:      "[user]\nfirst_name = \"Ada\"\n[discount]\nkind = \"flat\"\nvalue = nan\n",
			wantError: "flat discount[NaN] is not finite",
		},
		{
			name:      "unknown discount kind fails every command: error",
			data:      "[user]\nfirst_name = \"Ada\"\n[discount]\nkind = \"coupon\"\n",
			wantError: "discount kind[coupon] is not valid",
		},
	}

	for _, tt := range tests {
		path := filepath.Join(t.TempDir(), "shop.toml")
		require.NoError(t, os.WriteFile(path, []byte(tt.data), 0o600))

		for _, command := range []string{"list", "total", "price"} {
			t.Run(tt.name+"/"+command, func(t *testing.T) {
				var stdout, stderr bytes.Buffer

				err := newApp(&stdout, &stderr).Run(t.Context(), []string{"shop", "--config", path, command})
				require.ErrorContains(t, err, tt.wantError)
			})
		}
	}
}

func TestApp_InvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantError string
	}{
		{
			name:      "missing order file: error",
			args:      []string{"--config", filepath.Join(t.TempDir(), "missing.toml"), "total"},
			wantError: "config.Load",
		},
		{
			name:      "bad log level: error",
			args:      []string{"--log-level", "loud", "total"},
			wantError: "log level[loud] is not valid",
		},
		{
			name:      "bad product id: error",
			args:      []string{"price", "--remove", "two"},
			wantError: "product ID[two] is not valid",
		},
	}

	path := filepath.Join(t.TempDir(), "shop.toml")
	require.NoError(t, os.WriteFile(path, []byte(orderFile), 0o600))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			args := append([]string{"shop", "--config", path}, tt.args...)
			err := newApp(&stdout, &stderr).Run(t.Context(), args)
			require.ErrorContains(t, err, tt.wantError)
		})
	}
}

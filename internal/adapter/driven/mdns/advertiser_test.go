package mdns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortFromAddr(t *testing.T) {
	tests := []struct {
		addr    string
		want    int
		wantErr bool
	}{
		{addr: "127.0.0.1:8080", want: 8080},
		{addr: ":3000", want: 3000},
		{addr: "[::1]:9090", want: 9090},
		{addr: "localhost", wantErr: true},
		{addr: "host:http", wantErr: true},
		{addr: "host:0", wantErr: true},
		{addr: "host:70000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			got, err := PortFromAddr(tt.addr)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

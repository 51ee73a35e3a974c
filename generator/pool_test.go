package generator_test

import (
	"testing"

	"github.com/ipchama/dstorm/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPool(t *testing.T) {
	_, err := generator.NewPool(0)
	assert.Error(t, err)

	_, err = generator.NewPool(-1)
	assert.Error(t, err)

	p, err := generator.NewPool(1024)
	require.NoError(t, err)
	assert.Equal(t, 1024, p.Len())
}

func TestPool_Initialize(t *testing.T) {
	p, err := generator.NewPool(1024)
	require.NoError(t, err)

	p.Initialize(generator.NewIdentity(7))

	zero := make([]byte, 16)

	for i := 0; i < p.Len(); i++ {
		r := p.At(i)
		b := r.Bytes()

		require.Len(t, b, generator.RecordLen)
		assert.Equal(t, byte(1), r.Op())
		assert.True(t, r.Broadcast())
		assert.Equal(t, zero, b[12:28], "address fields of slot %d", i)
		assert.Equal(t, []byte{53, 1, 1, 255}, r.Options()[:4], "options of slot %d", i)
		assert.Equal(t, []byte{0x52, 0x54, 0x00}, []byte(r.ClientHWAddr()[:3]))
	}
}

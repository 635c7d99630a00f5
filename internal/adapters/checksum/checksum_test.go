package checksum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamNilotpal/lazrs/internal/core/domain"
	"github.com/iamNilotpal/lazrs/internal/core/ports"
)

func TestCheckSummers(t *testing.T) {
	t.Parallel()

	data := []byte("twenty byte record..")

	for _, algorithm := range []domain.ChecksumAlgorithm{CRC32IEEE, CRC64ISO, CRC64ECMA, XXHash64} {
		t.Run(string(algorithm), func(t *testing.T) {
			t.Parallel()

			sum := NewCheckSummer(algorithm)
			assert.Equal(t, string(algorithm), sum.Name())

			value := sum.Calculate(data)
			assert.True(t, sum.Verify(data, value))
			assert.False(t, sum.Verify(append([]byte{1}, data...), value))

			byID, ok := FromID(ID(algorithm))
			require.True(t, ok)
			assert.Equal(t, value, byID.Calculate(data))
		})
	}
}

func TestConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		new  func() ports.ChecksumPort
		size uint8
	}{
		{name: string(CRC32IEEE), new: NewCRC32IEEE, size: 4},
		{name: string(CRC64ISO), new: NewCRC64ISO, size: 8},
		{name: string(CRC64ECMA), new: NewCRC64ECMA, size: 8},
		{name: string(XXHash64), new: NewXXHash64, size: 8},
	}

	for _, tt := range tests {
		c := tt.new()
		assert.Equal(t, tt.name, c.Name())
		assert.Equal(t, tt.size, c.Size())
		assert.True(t, c.Verify([]byte("abc"), c.Calculate([]byte("abc"))))
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, Validate(DefaultOptions()))
	require.Error(t, Validate(&domain.ChecksumOptions{Enable: true, Algorithm: "md5"}))

	_, ok := FromID(IDNone)
	assert.False(t, ok)
}

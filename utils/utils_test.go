package utils_test

import (
	"testing"
	"time"

	"github.com/Mayur-aditya-007/AyuVeda-Website/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_jwt_secret")

	token, err := utils.GenerateJWT(42)
	require.NoError(t, err)

	id, err := utils.ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	_, err = utils.ParseJWT("not.a.token")
	assert.Error(t, err)
}

func TestDecodeDataURL(t *testing.T) {
	raw, contentType, ext, err := utils.DecodeDataURL("data:image/jpeg;base64,aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), raw)
	assert.Equal(t, "image/jpeg", contentType)
	assert.Equal(t, ".jpg", ext)

	_, _, _, err = utils.DecodeDataURL("just-some-text")
	assert.Error(t, err)

	_, _, _, err = utils.DecodeDataURL("data:image/png;base64,@@@")
	assert.Error(t, err)
}

func TestGenerateOTPRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code := utils.GenerateOTP()
		require.GreaterOrEqual(t, code, 100000)
		require.LessOrEqual(t, code, 999999)
	}
}

func TestCalculateBMI(t *testing.T) {
	bmi, err := utils.CalculateBMI(170, 65)
	require.NoError(t, err)
	assert.InDelta(t, 22.49, bmi, 0.01)
	assert.Equal(t, "Normal weight", utils.BMICategory(bmi))

	_, err = utils.CalculateBMI(0, 65)
	assert.Error(t, err)
	_, err = utils.CalculateBMI(170, 500)
	assert.Error(t, err)
}

func TestCalculateAge(t *testing.T) {
	dob := time.Now().AddDate(-30, 0, -1)
	assert.Equal(t, 30, utils.CalculateAge(dob))
}

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputName(t *testing.T) {
	assert.Equal(t, "city_dehazed.jpg", outputName("city.jpg", "dehazed"))
	assert.Equal(t, "shots/city_depth.png", outputName("shots/city.png", "depth"))
	assert.Equal(t, "a.b/city_unfiltered_depth.tif", outputName("a.b/city.tif", "unfiltered_depth"))
	assert.Equal(t, "city_dehazed", outputName("city", "dehazed"))
}

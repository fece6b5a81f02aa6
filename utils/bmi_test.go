package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound1(t *testing.T) {
	assert.Equal(t, 2.3, Round1(2.25))
	assert.Equal(t, 2.2, Round1(2.24))
	assert.Equal(t, 2.3, Round1(2.26))
	assert.Equal(t, 0.0, Round1(0))

	// halves round up even below zero: -2.25 -> -2.2, not -2.3
	assert.Equal(t, -2.2, Round1(-2.25))
	assert.Equal(t, -3.0, Round1(-3.04))
}

func TestCalculateBMI(t *testing.T) {
	assert.Equal(t, 22.9, CalculateBMI(70, 175))
	assert.Equal(t, 24.7, CalculateBMI(80, 180))
	assert.Equal(t, 24.2, CalculateBMI(70, 170))

	assert.Equal(t, 0.0, CalculateBMI(0, 175))
	assert.Equal(t, 0.0, CalculateBMI(70, 0))
	assert.Equal(t, 0.0, CalculateBMI(-5, 175))
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "Unknown", BMICategory(0))
	assert.Equal(t, "Underweight", BMICategory(18.4))
	assert.Equal(t, "Normal weight", BMICategory(18.5))
	assert.Equal(t, "Normal weight", BMICategory(24.9))
	assert.Equal(t, "Overweight", BMICategory(25))
	assert.Equal(t, "Obesity class I", BMICategory(30))
	assert.Equal(t, "Obesity class II", BMICategory(35))
	assert.Equal(t, "Obesity class III", BMICategory(40))
}

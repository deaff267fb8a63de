package vehicles

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loukach/infocar-eurotax-mapper/pkg/errors"
	"github.com/loukach/infocar-eurotax-mapper/pkg/normalize"
)

func TestEpochMillisUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		json string
		want EpochMillis
	}{
		{"number", `1577836800000`, 1577836800000},
		{"extended json", `{"$numberLong": "1577836800000"}`, 1577836800000},
		{"empty extended json", `{"$numberLong": ""}`, 0},
		{"null", `null`, 0},
		{"float", `1577836800000.0`, 1577836800000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got EpochMillis
			require.NoError(t, json.Unmarshal([]byte(tt.json), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEpochMillisYear(t *testing.T) {
	// 2020-01-01 in epoch millis.
	assert.Equal(t, 2020, EpochMillis(1577836800000).Year())
	assert.Equal(t, 0, EpochMillis(0).Year())
}

func TestExtractSpecs(t *testing.T) {
	trim := &Trim{
		ProviderCode:     "201905124321",
		ManufacturerCode: "334AXH1B",
		Name:             "500X 1.0 T3 120cv Sport",
		NormalizedMake:   "FIAT",
		NormalizedModel:  "500X",
		BodyType:         "SUV",
		FuelType:         "Benzina",
		GearType:         "Manuale",
		TractionType:     "Anteriore",
		CC:               999,
		PowerHP:          120,
		PowerKW:          88,
		Doors:            5,
		Seats:            5,
		Gears:            6,
		Mass:             1320,
		SellableWindow: &SellableWindow{
			Begin: 1577836800000, // 2020
		},
	}

	specs := ExtractSpecs(trim)

	assert.Equal(t, "500X 1.0 T3 120cv Sport", specs.Name)
	assert.Equal(t, "500x", specs.Model)
	assert.Equal(t, 120, specs.HP)
	assert.Equal(t, 2020, specs.SellableBegin)
	assert.Zero(t, specs.SellableEnd)
	assert.Equal(t, normalize.FuelPetrol, specs.FuelNorm)
	assert.Equal(t, normalize.BodySUV, specs.BodyNorm)
	assert.Equal(t, normalize.TransmissionManual, specs.GearTypeNorm)
	assert.Equal(t, normalize.TractionFWD, specs.TractionNorm)
}

func TestExtractSpecsPriceFallback(t *testing.T) {
	withDirect := &Trim{Price: 25000}
	assert.Equal(t, 25000.0, ExtractSpecs(withDirect).Price)

	withNested := &Trim{
		Prices: &Prices{OnTheRoad: &PriceValue{Value: 23500}},
	}
	assert.Equal(t, 23500.0, ExtractSpecs(withNested).Price)

	// Direct price wins over the nested block.
	withBoth := &Trim{
		Price:  25000,
		Prices: &Prices{OnTheRoad: &PriceValue{Value: 23500}},
	}
	assert.Equal(t, 25000.0, ExtractSpecs(withBoth).Price)

	assert.Zero(t, ExtractSpecs(&Trim{}).Price)
}

func TestIdentify(t *testing.T) {
	tests := []struct {
		name  string
		make  string
		model string
		body  normalize.BodyClass
		want  Class
	}{
		{"lcv make", "IVECO", "daily", "", ClassLCV},
		{"lcv make any model", "MAN", "tge", "", ClassLCV},
		{"lcv model", "FIAT", "ducato", "", ClassLCV},
		{"lcv model fragment", "FORD", "transit custom", "", ClassLCV},
		{"lcv model case insensitive", "MERCEDES", "Sprinter 313", "", ClassLCV},
		{"lcv body", "FIAT", "doblo", normalize.BodyVan, ClassLCV},
		{"pickup body", "TOYOTA", "hilux", normalize.BodyPickup, ClassLCV},
		{"passenger car", "FIAT", "500x", normalize.BodySUV, ClassCar},
		{"passenger berlingo", "CITROEN", "berlingo", normalize.BodyMPV, ClassCar},
		{"empty everything", "", "", "", ClassCar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Identify(tt.make, tt.model, tt.body))
		})
	}
}

func TestClassVehicleType(t *testing.T) {
	assert.Equal(t, "car", ClassCar.VehicleType())
	assert.Equal(t, "lcv", ClassLCV.VehicleType())
}

func TestInvertProviderCode(t *testing.T) {
	inverted, err := InvertProviderCode("201812128598")
	require.NoError(t, err)
	assert.Equal(t, "128598201812", inverted)

	// Involution: inverting twice restores the original.
	back, err := InvertProviderCode(inverted)
	require.NoError(t, err)
	assert.Equal(t, "201812128598", back)

	for _, bad := range []string{"", "12345", "1234567890123", "20181212859a"} {
		_, err := InvertProviderCode(bad)
		assert.ErrorIs(t, err, errors.ErrInvalidInput, "code %q", bad)
	}
}

package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFuel(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want FuelClass
	}{
		{"empty", "", ""},
		{"diesel italian", "Gasolio", FuelDiesel},
		{"diesel english", "diesel", FuelDiesel},
		{"petrol italian", "Benzina", FuelPetrol},
		{"petrol english", "petrol", FuelPetrol},
		{"gasoline", "gasoline", FuelPetrol},
		{"electric exact italian", "Elettrica", FuelElectric},
		{"electric exact masculine", "elettrico", FuelElectric},
		{"electric exact english", "electric", FuelElectric},
		{"hybrid petrol", "Ibrida Benzina", FuelHybridPetrol},
		{"hybrid bare defaults to petrol", "hybrid", FuelHybridPetrol},
		{"hybrid diesel", "Ibrido Gasolio", FuelHybridDiesel},
		{"plugin collapses to hybrid petrol", "Ibrida Plug-in Benzina", FuelHybridPetrol},
		{"phev collapses to hybrid petrol", "PHEV hybrid", FuelHybridPetrol},
		{"plugin diesel", "hybrid plug-in diesel", FuelHybridDiesel},
		{"electric plus petrol combination", "Elettrica/Benzina", FuelHybridPetrol},
		{"electric plus diesel combination", "elettrica e gasolio", FuelHybridDiesel},
		{"electric phrase stays electric", "motore elettrico autonomia estesa", FuelElectric},
		{"cng italian", "Metano", FuelCNG},
		{"cng english", "CNG", FuelCNG},
		{"lpg italian", "GPL", FuelLPG},
		{"lpg english", "lpg", FuelLPG},
		{"unknown", "idrogeno", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fuel(tt.raw))
		})
	}
}

func TestFuelClassHybrid(t *testing.T) {
	assert.True(t, FuelHybridPetrol.Hybrid())
	assert.True(t, FuelHybridDiesel.Hybrid())
	assert.False(t, FuelPetrol.Hybrid())
	assert.False(t, FuelElectric.Hybrid())
	assert.False(t, FuelClass("").Hybrid())
}

func TestBody(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want BodyClass
	}{
		{"empty", "", ""},
		{"sedan italian", "Berlina", BodySedan},
		{"sedan with door suffix", "Berlina 4 porte", BodySedan},
		{"three volumes", "3 volumi", BodySedan},
		{"hatchback", "Hatchback 5 porte", BodyHatchback},
		{"wagon italian", "Familiare", BodyWagon},
		{"station wagon", "Station Wagon", BodyWagon},
		{"suv", "SUV", BodySUV},
		{"crossover", "Crossover", BodySUV},
		{"offroad italian", "Fuoristrada", BodySUV},
		{"fst code", "FST", BodySUV},
		{"coupe accented", "Coupé", BodyCoupe},
		{"convertible before coupe", "Coupé-Cabriolet", BodyConvertible},
		{"spider", "Spider", BodyConvertible},
		{"mpv italian", "Monovolume", BodyMPV},
		{"mpv before sedan", "Berlina multispazio", BodyMPV},
		{"van italian", "Furgone", BodyVan},
		{"van literal", "van", BodyVan},
		{"fitted van", "Cabinato allestito", BodyVan},
		{"pickup before van", "Microfurgone pick-up", BodyPickup},
		{"pickup plain", "Pickup", BodyPickup},
		{"chassis italian", "Cabinato", BodyChassis},
		{"cab literal", "cab", BodyChassis},
		{"platform before chassis", "Cabinato con cassone", BodyPlatform},
		{"platform pianale", "Pianale", BodyPlatform},
		{"bus", "Autobus", BodyBus},
		{"bus literal", "bus", BodyBus},
		{"unknown", "qualcosa", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Body(tt.raw))
		})
	}
}

func TestTransmission(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want TransmissionClass
	}{
		{"empty", "", ""},
		{"manual italian", "Manuale", TransmissionManual},
		{"manual english", "manual", TransmissionManual},
		{"mechanical", "Cambio meccanico", TransmissionManual},
		{"automatic", "Automatico", TransmissionAutomatic},
		{"auto short", "Cambio auto", TransmissionAutomatic},
		{"dsg is automatic", "DSG", TransmissionAutomatic},
		{"dct is automatic", "DCT 7 marce", TransmissionAutomatic},
		{"robotized", "Robotizzato", TransmissionAutomatic},
		{"sequential", "Sequenziale", TransmissionAutomatic},
		{"cvt", "CVT", TransmissionCVT},
		{"unknown", "idraulico", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Transmission(tt.raw))
		})
	}
}

func TestTraction(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want TractionClass
	}{
		{"empty", "", ""},
		{"front italian", "Anteriore", TractionFWD},
		{"front english", "Front wheel drive", TractionFWD},
		{"rear italian", "Posteriore", TractionRWD},
		{"rear english", "rear", TractionRWD},
		{"awd italian", "Integrale", TractionAWD},
		{"4x4", "4x4", TractionAWD},
		{"4wd", "4WD", TractionAWD},
		{"unknown", "cingoli", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Traction(tt.raw))
		})
	}
}

func TestModel(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", ""},
		{"lowercase trim", "  Golf  ", "golf"},
		{"generation suffix", "Golf VIII", "golf"},
		{"generation and year", "Panda III 2016", "panda"},
		{"bare year suffix", "500 2020", "500"},
		{"ds collapse", "DS 3", "ds3"},
		{"ds collapse with rest", "DS 4 Crossback", "ds4 crossback"},
		{"range rover abbreviation", "RR Evoque", "range rover evoque"},
		{"rre abbreviation", "RRE", "range rover evoque"},
		{"alfa abbreviation", "AR Giulia", "alfa romeo giulia"},
		{"vw abbreviation", "VW Golf", "volkswagen golf"},
		{"roman numeral mid-name kept", "Serie V Touring", "serie v touring"},
		{"no change", "Corsa", "corsa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Model(tt.raw))
		})
	}
}

func TestCleanOEM(t *testing.T) {
	tests := []struct {
		name    string
		oem     string
		brand   string
		want    string
		cleaned bool
	}{
		{"empty oem", "", "RENAULT", "", false},
		{"unknown brand", "ABC12345", "FIAT", "", false},
		{"renault prefix", "XJB1SE16A06", "RENAULT", "SE16A06", true},
		{"renault generic drop", "ABCDEFG", "Renault", "DEFG", true},
		{"renault short untouched", "AB12", "RENAULT", "", false},
		{"vw suffix", "CD13NZ-GPA", "VOLKSWAGEN", "CD13NZ", true},
		{"vw no suffix", "CD13NZ", "VOLKSWAGEN", "", false},
		{"skoda raa", "NX32HVRAA", "SKODA", "NX32HV", true},
		{"mercedes dl", "2543011DL2XX", "MERCEDES-BENZ", "2543011DL2", true},
		{"mercedes dash", "254301-1D", "MERCEDES", "254301", true},
		{"audi known suffix", "8Y1A7GYEG", "AUDI", "8Y1A7G", true},
		{"audi generic dash", "8Y1A7G-Z1", "AUDI", "8Y1A7G", true},
		{"opel trailing letter", "123456A", "OPEL", "123456", true},
		{"opel fallback", "1234ABC", "OPEL", "1234A", true},
		{"mini suffix", "XM51ZKQ", "MINI", "XM51", true},
		{"peugeot tail", "1PP9A5NC", "PEUGEOT", "1PP9A5", true},
		{"kia tail", "G4DEE5X1", "KIA", "G4DEE", true},
		{"mazda tail", "DEMJ7", "MAZDA", "DEMJ", true},
		{"cupra marker", "KL11AZP12XYZ", "CUPRA", "KL11AZ", true},
		{"mg marker", "EH32NS11JAY", "MG", "EH32NS11", true},
		{"case insensitive brand", "demj7", "mazda", "DEMJ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CleanOEM(tt.oem, tt.brand)
			assert.Equal(t, tt.cleaned, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

package predictor

import (
	"errors"
	"testing"
)

func TestErrorPredicates(t *testing.T) {
	ce := ErrConfiguration("bad flags")
	ie := ErrInference("model rejected input")

	if !IsConfiguration(ce) || IsConfiguration(ie) {
		t.Fatalf("IsConfiguration misclassified: cfg=%v inf=%v", IsConfiguration(ce), IsConfiguration(ie))
	}
	if !IsInference(ie) || IsInference(ce) {
		t.Fatalf("IsInference misclassified")
	}
	if IsConfiguration(errors.New("other")) || IsInference(nil) {
		t.Fatalf("predicates matched unrelated errors")
	}
	if ce.Error() != "bad flags" || ie.Error() != "model rejected input" {
		t.Fatalf("unexpected messages: %q %q", ce.Error(), ie.Error())
	}
}

func TestConfigDefaults(t *testing.T) {
	c := Config{}.withDefaults()
	if c.Bin != "chemprop" || c.FeaturizerMode != "RIGR" || c.Devices != 1 || c.BatchSize != 50 {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.ModelsPath != DefaultModelsPath {
		t.Fatalf("unexpected models path default: %q", c.ModelsPath)
	}
	c = Config{Bin: "cp", FeaturizerMode: "V2", Devices: 2, BatchSize: 8, ModelsPath: "/m"}.withDefaults()
	if c.Bin != "cp" || c.FeaturizerMode != "V2" || c.Devices != 2 || c.BatchSize != 8 || c.ModelsPath != "/m" {
		t.Fatalf("explicit values overridden: %+v", c)
	}
}

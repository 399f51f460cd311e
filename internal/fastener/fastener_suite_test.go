package fastener_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestFastener(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Fastener Suite")
}

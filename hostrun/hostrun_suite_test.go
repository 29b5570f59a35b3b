package hostrun

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestHostrun(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Hostrun Suite")
}

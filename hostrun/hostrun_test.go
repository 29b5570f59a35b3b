package hostrun

import (
	"bytes"
	"errors"
	"strings"
	"unsafe"

	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/notargets/HistKernel/config"
	"github.com/notargets/HistKernel/histogram"
	"github.com/notargets/HistKernel/runner"
	"github.com/notargets/HistKernel/runner/runnermock"
)

var _ = Describe("Run", func() {
	var (
		mockCtrl *gomock.Controller
		device   *runnermock.MockDevice
		kernel   *runnermock.MockKernel
		imageMem *runnermock.MockMemory
		histMem  *runnermock.MockMemory
		out      *bytes.Buffer
		r        *runner.Runner
		cfg      config.Config
		uploaded []byte
	)

	kernelImage := []byte("@kernel void hist(const unsigned char *image, unsigned int *hist, const int size) {}")

	// expectRun wires a device that programs, runs and returns the histogram
	// produced by result from the uploaded image
	expectRun := func(result func(ref histogram.Histogram) histogram.Histogram) {
		device.EXPECT().BuildKernel(gomock.Any(), "hist", "").
			DoAndReturn(func(src, name, props string) (runner.Kernel, error) {
				Expect(src).To(HavePrefix("#define IMAGE_SIZE 4096\n#define HISTOGRAM_SIZE 256\n"))
				Expect(src).To(HaveSuffix(string(kernelImage)))
				return kernel, nil
			})
		device.EXPECT().Malloc(int64(4096), gomock.Any()).Return(imageMem, nil)
		device.EXPECT().Malloc(histogram.Bytes, gomock.Any()).Return(histMem, nil)

		gomock.InOrder(
			imageMem.EXPECT().CopyFrom(gomock.Any(), int64(4096)).
				Do(func(src unsafe.Pointer, n int64) {
					uploaded = append([]byte(nil), unsafe.Slice((*byte)(src), n)...)
				}),
			histMem.EXPECT().CopyFrom(gomock.Any(), histogram.Bytes),
			kernel.EXPECT().RunWithArgs(imageMem, histMem, int32(4096)).Return(nil),
			device.EXPECT().Finish(),
			histMem.EXPECT().CopyTo(gomock.Any(), histogram.Bytes).
				Do(func(dst unsafe.Pointer, n int64) {
					*(*histogram.Histogram)(dst) = result(histogram.Reference(uploaded))
				}),
		)

		kernel.EXPECT().Free()
		histMem.EXPECT().Free()
		imageMem.EXPECT().Free()
		device.EXPECT().Free()
	}

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		device = runnermock.NewMockDevice(mockCtrl)
		kernel = runnermock.NewMockKernel(mockCtrl)
		imageMem = runnermock.NewMockMemory(mockCtrl)
		histMem = runnermock.NewMockMemory(mockCtrl)
		device.EXPECT().Mode().Return("Serial").AnyTimes()

		out = &bytes.Buffer{}
		uploaded = nil
		r = runner.NewRunner(func(props string) (runner.Device, error) {
			if props == "serial" {
				return device, nil
			}
			return nil, errors.New("not present")
		}, out)

		cfg = config.Default()
		cfg.Devices = []string{"serial"}
	})

	AfterEach(func() {
		r.Free()
		mockCtrl.Finish()
	})

	It("should pass when the device matches the reference", func() {
		expectRun(func(ref histogram.Histogram) histogram.Histogram { return ref })

		res, err := Run(cfg, r, kernelImage, out)

		Expect(err).NotTo(HaveOccurred())
		Expect(res.Passed).To(BeTrue())
		Expect(res.Mismatch).To(BeNil())
		Expect(res.Mode).To(Equal("Serial"))
		Expect(out.String()).To(HaveSuffix("TEST PASSED\n"))
		Expect(out.String()).NotTo(ContainSubstring("mismatch"))
	})

	It("should upload the image generated from the seed", func() {
		expectRun(func(ref histogram.Histogram) histogram.Histogram { return ref })

		_, err := Run(cfg, r, kernelImage, out)

		Expect(err).NotTo(HaveOccurred())
		Expect(uploaded).To(HaveLen(cfg.ImageSize))
		ref := histogram.Reference(uploaded)
		Expect(ref.Total()).To(Equal(uint64(cfg.ImageSize)))
	})

	It("should report only the first mismatching bucket", func() {
		var want histogram.Histogram
		expectRun(func(ref histogram.Histogram) histogram.Histogram {
			want = ref
			dev := ref
			dev[42] = ref[42] + 3
			dev[43] = ref[43] + 1
			dev[250] = 0
			return dev
		})

		res, err := Run(cfg, r, kernelImage, out)

		Expect(err).NotTo(HaveOccurred())
		Expect(res.Passed).To(BeFalse())
		Expect(*res.Mismatch).To(Equal(histogram.Mismatch{
			Index: 42, CPU: want[42], Device: want[42] + 3,
		}))

		text := out.String()
		Expect(text).To(ContainSubstring("Error: Result mismatch\n"))
		Expect(text).To(ContainSubstring(res.Mismatch.String() + "\n"))
		Expect(strings.Count(text, "i = ")).To(Equal(1))
		Expect(text).To(HaveSuffix("TEST FAILED\n"))
	})

	It("should flag a mismatch at bucket zero", func() {
		expectRun(func(ref histogram.Histogram) histogram.Histogram {
			ref[0]++
			return ref
		})

		res, err := Run(cfg, r, kernelImage, out)

		Expect(err).NotTo(HaveOccurred())
		Expect(res.Passed).To(BeFalse())
		Expect(res.Mismatch.Index).To(Equal(0))
	})

	It("should print the host banner and summaries when verbose", func() {
		expectRun(func(ref histogram.Histogram) histogram.Histogram { return ref })
		cfg.Verbose = true

		_, err := Run(cfg, r, kernelImage, out)

		Expect(err).NotTo(HaveOccurred())
		Expect(out.String()).To(HavePrefix("Host: "))
		Expect(out.String()).To(ContainSubstring("CPU histogram:    total=4096"))
		Expect(out.String()).To(ContainSubstring("Device histogram: total=4096"))
	})

	It("should stop when no device can be programmed", func() {
		device.EXPECT().BuildKernel(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("incompatible image"))
		device.EXPECT().Free()
		cfg.Devices = []string{"cuda", "serial"}

		_, err := Run(cfg, r, kernelImage, out)

		Expect(err).To(MatchError(runner.ErrNoDevice))
		Expect(out.String()).To(ContainSubstring("Failed to program device[1] with kernel image!"))
		Expect(out.String()).To(ContainSubstring("Failed to program any device found, exit!"))
		Expect(out.String()).NotTo(ContainSubstring("TEST"))
	})

	It("should abort on a runtime failure", func() {
		device.EXPECT().BuildKernel(gomock.Any(), gomock.Any(), gomock.Any()).Return(kernel, nil)
		device.EXPECT().Malloc(int64(4096), gomock.Any()).Return(imageMem, nil)
		device.EXPECT().Malloc(histogram.Bytes, gomock.Any()).Return(histMem, nil)
		imageMem.EXPECT().CopyFrom(gomock.Any(), gomock.Any())
		histMem.EXPECT().CopyFrom(gomock.Any(), gomock.Any())
		kernel.EXPECT().RunWithArgs(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("enqueue failed"))
		kernel.EXPECT().Free()
		histMem.EXPECT().Free()
		imageMem.EXPECT().Free()
		device.EXPECT().Free()

		_, err := Run(cfg, r, kernelImage, out)

		Expect(errors.Is(err, runner.ErrRuntime)).To(BeTrue())
		Expect(out.String()).NotTo(ContainSubstring("TEST"))
	})

	It("should abort when a buffer cannot be allocated", func() {
		device.EXPECT().BuildKernel(gomock.Any(), gomock.Any(), gomock.Any()).Return(kernel, nil)
		device.EXPECT().Malloc(int64(4096), gomock.Any()).Return(nil, errors.New("no memory"))
		kernel.EXPECT().Free()
		device.EXPECT().Free()

		_, err := Run(cfg, r, kernelImage, out)

		Expect(errors.Is(err, runner.ErrRuntime)).To(BeTrue())
	})
})

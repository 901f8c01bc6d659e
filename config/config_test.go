package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/mtlang/config"
	"github.com/sarchlab/mtlang/core"
)

var _ = Describe("Config", func() {
	var dir string

	write := func(content string) string {
		path := filepath.Join(dir, "mt.yaml")
		Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())
		return path
	}

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	It("should provide defaults", func() {
		cfg := config.Default()

		Expect(cfg.Log.Level).To(Equal("warn"))
		Expect(cfg.Color).To(BeTrue())
		Expect(cfg.MaxSteps).To(BeZero())
		Expect(cfg.Freq()).To(Equal(1 * sim.GHz))
		Expect(cfg.Validate()).To(Succeed())
	})

	It("should overlay the file on the defaults", func() {
		cfg, err := config.Load(write(`
log:
  level: DEBUG
  format: json
dump_state: true
max_steps: 500
`))

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Log.Level).To(Equal("debug"))
		Expect(cfg.Log.Format).To(Equal("json"))
		Expect(cfg.DumpState).To(BeTrue())
		Expect(cfg.MaxSteps).To(Equal(uint64(500)))
		Expect(cfg.Color).To(BeTrue())
		Expect(cfg.FreqMHz).To(Equal(1000.0))
	})

	It("should accept an empty file", func() {
		cfg, err := config.Load(write(""))

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg).To(Equal(config.Default()))
	})

	It("should reject unknown keys", func() {
		_, err := config.Load(write("colour: false\n"))
		Expect(err).To(HaveOccurred())
	})

	It("should reject unknown levels and formats", func() {
		_, err := config.Load(write("log:\n  level: loud\n"))
		Expect(err).To(MatchError(ContainSubstring("unknown log level")))

		_, err = config.Load(write("log:\n  format: xml\n"))
		Expect(err).To(MatchError(ContainSubstring("unknown log format")))
	})

	It("should reject a non positive frequency", func() {
		_, err := config.Load(write("freq_mhz: 0\n"))
		Expect(err).To(HaveOccurred())
	})

	It("should read the path from the environment", func() {
		GinkgoT().Setenv(config.EnvVar, write("lint: true\n"))

		cfg, err := config.FromEnv()

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Lint).To(BeTrue())
	})

	It("should fall back to defaults without the environment variable", func() {
		GinkgoT().Setenv(config.EnvVar, "")

		cfg, err := config.FromEnv()

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg).To(Equal(config.Default()))
	})

	It("should map trace to the custom level", func() {
		level, err := config.ParseLevel("trace")

		Expect(err).NotTo(HaveOccurred())
		Expect(level).To(Equal(core.LevelTrace))
	})

	It("should build a json handler honoring the level", func() {
		cfg := config.Default()
		cfg.Log.Format = "json"
		cfg.Log.Level = "info"

		var buf bytes.Buffer
		logger := slog.New(cfg.NewHandler(&buf))
		logger.Debug("hidden")
		logger.Info("shown", "IP", 3)

		Expect(buf.String()).NotTo(ContainSubstring("hidden"))
		Expect(buf.String()).To(ContainSubstring(`"msg":"shown"`))
		Expect(buf.String()).To(ContainSubstring(`"IP":3`))
	})

	It("should append to the log file", func() {
		cfg := config.Default()
		cfg.Log.File = filepath.Join(dir, "mt.log")

		w, closeLog, err := cfg.OpenLog()
		Expect(err).NotTo(HaveOccurred())
		slog.New(cfg.NewHandler(w)).Warn("written")
		Expect(closeLog()).To(Succeed())

		b, err := os.ReadFile(cfg.Log.File)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(b)).To(ContainSubstring("written"))
	})
})

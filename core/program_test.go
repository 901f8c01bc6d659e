package core

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Program", func() {
	It("should split statements and append an exit", func() {
		p, issues := Compile("four One two.\nP four newl.\n")

		Expect(issues).To(BeEmpty())
		Expect(p.Runnable()).To(BeTrue())
		Expect(p.Len()).To(Equal(3))
		Expect(p.Tokens[0].Op).To(Equal(OpVar))
		Expect(p.Tokens[1].Op).To(Equal(OpPrint))
		Expect(p.Tokens[2].Op).To(Equal(OpExit))
	})

	It("should warn when the last statement has no separator", func() {
		p, issues := Compile("P spce.\nP newl")

		Expect(p.Runnable()).To(BeTrue())
		Expect(p.Len()).To(Equal(3))
		Expect(issues).To(HaveLen(1))
		Expect(issues[0].Level).To(Equal(IssueWarning))
		Expect(issues[0].Code).To(Equal(CodeMissingSeparator))
		Expect(issues[0].Index).To(Equal(-1))
	})

	It("should collect every parse error before giving up", func() {
		p, issues := Compile("P spce. toolong x. .  P newl. abcdefgh.")

		Expect(p.Runnable()).To(BeFalse())
		Expect(HasErrors(issues)).To(BeTrue())
		Expect(issues).To(HaveLen(3))

		Expect(issues[0].Index).To(Equal(1))
		Expect(issues[0].Err).To(MatchError(ErrUnknownOperation))
		Expect(issues[0].Statement).To(Equal("toolong x"))

		Expect(issues[1].Index).To(Equal(2))
		Expect(issues[1].Err).To(MatchError(ErrNoOpcodeProvided))

		Expect(issues[2].Index).To(Equal(4))
		Expect(p.Tokens[4].Op).To(Equal(OpInvalid))
	})

	It("should keep the first definition of a duplicated label", func() {
		p, issues := Compile("target. P spce. target. P newl.")

		Expect(p.Runnable()).To(BeTrue())
		Expect(p.Labels).To(HaveKeyWithValue("target", 0))
		Expect(issues).To(HaveLen(1))
		Expect(issues[0].Level).To(Equal(IssueWarning))
		Expect(issues[0].Code).To(Equal(CodeDuplicateLabel))
		Expect(issues[0].Index).To(Equal(2))
		Expect(issues[0].Message).To(ContainSubstring("`target`"))
	})

	It("should warn about labels with arguments but still register them", func() {
		p, issues := Compile("target x.")

		Expect(p.Labels).To(HaveKeyWithValue("target", 0))
		Expect(issues).To(HaveLen(1))
		Expect(issues[0].Code).To(Equal(CodeLabelArgs))
	})

	It("should treat labels as case sensitive", func() {
		p, _ := Compile("target. Target.")

		Expect(p.Labels).To(HaveKeyWithValue("target", 0))
		Expect(p.Labels).To(HaveKeyWithValue("Target", 1))
	})

	It("should compile a file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "hello.mt")
		Expect(os.WriteFile(path, []byte("P dott."), 0o644)).To(Succeed())

		p, issues, err := CompileFile(path)

		Expect(err).NotTo(HaveOccurred())
		Expect(issues).To(BeEmpty())
		Expect(p.Len()).To(Equal(2))
	})

	It("should fail on a missing file", func() {
		_, _, err := CompileFile(filepath.Join(GinkgoT().TempDir(), "missing.mt"))
		Expect(err).To(HaveOccurred())
	})
})

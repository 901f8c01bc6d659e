package core

import (
	"bytes"
	"errors"
	"io"
	"math"
	"strings"

	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("InstEmulator", func() {
	var (
		ie  instEmulator
		s   coreState
		out *bytes.Buffer
	)

	load := func(src, input string) {
		p, issues := Compile(src)
		Expect(HasErrors(issues)).To(BeFalse())

		out = new(bytes.Buffer)
		s = newCoreState(p, NewConsole(strings.NewReader(input), out), 0)
	}

	runAll := func() error {
		for s.Status == StatusRunning {
			if err := ie.RunInst(&s); err != nil {
				return err
			}
		}

		return nil
	}

	BeforeEach(func() {
		ie = instEmulator{}
	})

	Context("Print", func() {
		It("should print the decimal rendering of a number", func() {
			load("four One two. P four.", "")

			Expect(runAll()).To(Succeed())
			Expect(out.String()).To(Equal("12\n"))
			Expect(s.Halt).To(Equal(HaltExit))
		})

		It("should concatenate its arguments", func() {
			load("word hello world. P word spce dott newl.", "")

			Expect(runAll()).To(Succeed())
			Expect(out.String()).To(Equal("hello world .\n\n"))
		})

		It("should abort on an unknown variable", func() {
			load("P nope.", "")

			err := runAll()

			Expect(err).To(MatchError(ErrVariableNotFound))
			Expect(s.Status).To(Equal(StatusAborted))
			Expect(s.IP).To(Equal(0))
		})

		It("should propagate console write failures", func() {
			ctrl := gomock.NewController(GinkgoT())
			console := NewMockConsole(ctrl)
			load("P spce.", "")
			s.Console = console

			console.EXPECT().WriteLine(" ").Return(io.ErrClosedPipe)

			Expect(ie.RunInst(&s)).To(MatchError(io.ErrClosedPipe))
			Expect(s.Status).To(Equal(StatusAborted))
		})
	})

	Context("Arithmetic", func() {
		It("should apply each operation", func() {
			load("numa Seven. numb Two. "+
				"Ab numa numb add. sb numa numb sub. "+
				"Mul numa numb mul. div numa numb quo.", "")

			Expect(runAll()).To(Succeed())

			for name, expected := range map[string]float64{
				"add": 9, "sub": 5, "mul": 14, "quo": 3.5,
			} {
				val, ok := s.Vars.Get(name)
				Expect(ok).To(BeTrue())
				Expect(val).To(Equal(Number(expected)))
			}
		})

		It("should require three arguments", func() {
			load("numa One. Ab numa numa.", "")

			Expect(runAll()).To(MatchError(ErrInvalidAmountArguments))
		})

		It("should require existing operands", func() {
			load("numa One. sb numa nope dest.", "")

			Expect(runAll()).To(MatchError(ErrVariableDoesNotExist))
		})

		It("should refuse string operands", func() {
			load("numa One. Mul numa spce dest.", "")

			Expect(runAll()).To(MatchError(ErrArithmeticOnString))
		})

		It("should refuse to overwrite a string", func() {
			load("word hi. numa One. Ab numa numa word.", "")

			Expect(runAll()).To(MatchError(ErrStoringToString))
			val, _ := s.Vars.Get("word")
			Expect(val).To(Equal(String("hi")))
		})

		It("should abort on zero division and keep the destination", func() {
			load("numa Five. numb Zero. dest One. div numa numb dest.", "")

			err := runAll()

			Expect(err).To(MatchError(ErrZeroDivision))
			var rerr *RuntimeError
			Expect(errors.As(err, &rerr)).To(BeTrue())
			Expect(rerr.IP).To(Equal(3))
			Expect(rerr.Token.Op).To(Equal(OpDiv))

			val, _ := s.Vars.Get("dest")
			Expect(val).To(Equal(Number(1)))
		})
	})

	Context("Var", func() {
		It("should bind a string when the first argument is lowercase", func() {
			load("word hello  there.", "")

			Expect(runAll()).To(Succeed())
			val, _ := s.Vars.Get("word")
			Expect(val).To(Equal(String("hello  there")))
		})

		It("should refuse to change a number into a string", func() {
			load("name One. name hello.", "")

			Expect(runAll()).To(MatchError(ErrTypeChangeToString))
		})

		It("should refuse to change a string into a number", func() {
			load("name hello. name One.", "")

			Expect(runAll()).To(MatchError(ErrTypeChangeToNumber))
		})

		It("should refuse to rebind a builtin with a number", func() {
			load("newl One.", "")

			Expect(runAll()).To(MatchError(ErrTypeChangeToNumber))
		})

		It("should require an argument", func() {
			load("name.", "")

			Expect(runAll()).To(MatchError(ErrVarMissingArgs))
		})

		It("should surface number literal errors", func() {
			load("name One comma two comma.", "")

			Expect(runAll()).To(MatchError(ErrDoubleComma))
		})
	})

	Context("Branch", func() {
		It("should jump to the label index", func() {
			load("xxxx One. yyyy One. equal xxxx yyyy finish. P xxxx. finish. P yyyy.", "")

			for s.IP < 2 {
				Expect(ie.RunInst(&s)).To(Succeed())
			}
			Expect(ie.RunInst(&s)).To(Succeed())

			Expect(s.IP).To(Equal(s.Code.Labels["finish"]))
			Expect(s.IP).To(Equal(4))

			Expect(ie.RunInst(&s)).To(Succeed())
			Expect(s.IP).To(Equal(5))

			Expect(runAll()).To(Succeed())
			Expect(out.String()).To(Equal("1\n"))
		})

		It("should fall through when the condition fails", func() {
			load("xxxx One. yyyy Two. great xxxx yyyy finish. P xxxx. finish.", "")

			Expect(runAll()).To(Succeed())
			Expect(out.String()).To(Equal("1\n"))
		})

		It("should loop backwards", func() {
			load("iter Zero. stop Three. step One. "+
				"repeat. P iter. Ab iter step iter. lower iter stop repeat.", "")

			Expect(runAll()).To(Succeed())
			Expect(out.String()).To(Equal("0\n1\n2\n"))
		})

		It("should compare strings for equality", func() {
			load("aaaa hi. bbbb hi. Equal aaaa bbbb target. P dott. target. P aaaa.", "")

			Expect(runAll()).To(Succeed())
			Expect(out.String()).To(Equal("hi\n"))
		})

		It("should abort on an undefined label", func() {
			load("aaaa One. bbbb One. equal aaaa bbbb nowher.", "")

			Expect(runAll()).To(MatchError(ErrLabelNotFound))
			Expect(s.IP).To(Equal(2))
		})

		It("should abort on an invalid selector", func() {
			load("aaaa One. jumps aaaa aaaa target. target.", "")

			Expect(runAll()).To(MatchError(ErrBranchSelector))
		})

		It("should require three arguments", func() {
			load("equal aaaa target. target.", "")

			Expect(runAll()).To(MatchError(ErrBranchArgs))
		})

		It("should require operands of the same type", func() {
			load("aaaa One. equal aaaa spce target. target.", "")

			Expect(runAll()).To(MatchError(ErrVarsNotOfSameType))
		})

		It("should refuse ordering of strings", func() {
			load("lower spce newl target. target.", "")

			Expect(runAll()).To(MatchError(ErrInvalidComparisonForTypes))
		})

		It("should require existing operands", func() {
			load("great aaaa aaaa target. target.", "")

			Expect(runAll()).To(MatchError(ErrVariableDoesNotExist))
		})
	})

	Context("Input", func() {
		It("should read a string", func() {
			load("i text line. P line.", "hello there\r\n")

			Expect(runAll()).To(Succeed())
			Expect(out.String()).To(Equal("hello there\n"))
		})

		It("should read a number", func() {
			load("i Num line. Ab line line line. P line.", "2.5\n")

			Expect(runAll()).To(Succeed())
			Expect(out.String()).To(Equal("5\n"))
		})

		It("should rebind regardless of the previous type", func() {
			load("line hi. i Num line. P line.", "7\n")

			Expect(runAll()).To(Succeed())
			Expect(out.String()).To(Equal("7\n"))
		})

		It("should halt gracefully on a non numeric line", func() {
			load("i Num line. P line.", "abc\n")

			Expect(runAll()).To(Succeed())
			Expect(s.Status).To(Equal(StatusHalted))
			Expect(s.Halt).To(Equal(HaltInputMismatch))
			Expect(out.String()).To(BeEmpty())
		})

		It("should abort when no line is available", func() {
			ctrl := gomock.NewController(GinkgoT())
			console := NewMockConsole(ctrl)
			load("i text line.", "")
			s.Console = console

			console.EXPECT().ReadLine().Return("", io.EOF)

			Expect(ie.RunInst(&s)).To(MatchError(ErrInputUnavailable))
		})

		It("should require two arguments", func() {
			load("i text.", "")

			Expect(runAll()).To(MatchError(ErrInputArgs))
		})
	})

	It("should enforce the step limit", func() {
		load("aaaa One. repeat. equal aaaa aaaa repeat.", "")
		s.MaxSteps = 10

		Expect(runAll()).To(MatchError(ErrStepLimit))
		Expect(s.Steps).To(Equal(uint64(10)))
	})

	It("should do nothing once halted", func() {
		load("P spce.", "")

		Expect(runAll()).To(Succeed())
		ip := s.IP
		Expect(ie.RunInst(&s)).To(Succeed())
		Expect(s.IP).To(Equal(ip))
	})
})

var _ = Describe("parseInputNumber", func() {
	DescribeTable("accepted",
		func(text string, expected float64) {
			n, ok := parseInputNumber(text)
			Expect(ok).To(BeTrue())
			Expect(n).To(Equal(expected))
		},
		Entry("integer", "42", 42.0),
		Entry("negative", "-1.5", -1.5),
		Entry("exponent", "1e3", 1000.0),
		Entry("infinity", "inf", math.Inf(1)),
	)

	DescribeTable("rejected",
		func(text string) {
			_, ok := parseInputNumber(text)
			Expect(ok).To(BeFalse())
		},
		Entry("word", "abc"),
		Entry("empty", ""),
		Entry("hex", "0x10"),
		Entry("underscore", "1_000"),
		Entry("padded", " 1"),
	)
})

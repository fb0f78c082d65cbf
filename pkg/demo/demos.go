package demo

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"termfx/pkg/animation"
)

// typingMessage is what the backspace demo types and erases.
const typingMessage = "Hello, World!"

// failStep is the zero-based iteration the error demo fails at. Steps
// before it write normally; the failing step and everything after it
// never reach the terminal.
const failStep = 2

var errSimulated = errors.New("simulated error during processing")

func runBasicWrite(ctx context.Context, s *Session) error {
	s.Term.Println("\n=== Basic Write Demo ===")

	// Println terminates each line by itself.
	s.Term.Println("Line 1 with Println")
	s.Term.Println("Line 2 with Println")

	// Print does not, so consecutive writes land on one line.
	s.Term.Print("Line 1 with Print")
	s.Term.Print("Line 2 with Print")

	s.Term.Print("\n")
	s.Term.Println("Now we're on a new line")
	return nil
}

func runFlush(ctx context.Context, s *Session) error {
	s.Term.Println("\n=== Flush Importance Demo ===")

	s.Term.Println("Without flush (buffered until the end):")
	for i := 0; i < 5; i++ {
		s.Term.Write(fmt.Sprintf("Processing %d... ", i))
		if err := s.sleep(ctx, s.Timing.StepInterval); err != nil {
			return err
		}
	}
	s.Term.Flush()

	s.Term.Println("\n\nWith flush (shows immediately):")
	for i := 0; i < 5; i++ {
		s.Term.Printf("Processing %d... ", i)
		if err := s.sleep(ctx, s.Timing.StepInterval); err != nil {
			return err
		}
	}

	s.Term.Println("\nDone!")
	return nil
}

func runCountdown(ctx context.Context, s *Session) error {
	s.Term.Println("\n=== Carriage Return Demo ===")

	s.Term.Println("Counting down with carriage return:")
	for i := 10; i >= 1; i-- {
		s.Term.Overwrite(fmt.Sprintf("Countdown: %d", i))
		if err := s.sleep(ctx, s.Timing.CountdownInterval); err != nil {
			return err
		}
	}

	s.Term.EndLine("Countdown: Blast off!")
	return nil
}

func runSpinner(ctx context.Context, s *Session) error {
	s.Term.Println("\n=== Loading Animation Demo ===")

	s.Term.Println("Loading with animation:")
	for i := 0; i < 20; i++ {
		s.Term.Overwrite(fmt.Sprintf("%s Loading... %d/20", animation.Dots.At(i), i+1))
		if err := s.sleep(ctx, s.Timing.SpinnerInterval); err != nil {
			return err
		}
	}

	s.Term.EndLine("✅ Loading complete!")
	return nil
}

func runProgress(ctx context.Context, s *Session) error {
	s.Term.Println("\n=== Progress Bar Demo ===")

	const total = 50

	s.Term.Println("Processing with progress bar:")
	for i := 0; i <= total; i++ {
		s.Term.Overwrite("Progress: " + s.Bar.Render(i, total))
		if err := s.sleep(ctx, s.Timing.ProgressInterval); err != nil {
			return err
		}
	}

	s.Term.Println("\n✅ Processing complete!")
	return nil
}

func runMultiline(ctx context.Context, s *Session) error {
	s.Term.Println("\n=== Multi-line Output Demo ===")

	s.Term.Println("Initial state:")
	for k := 1; k <= 3; k++ {
		s.Term.Println(fmt.Sprintf("Line %d: Ready", k))
	}

	if err := s.sleep(ctx, s.Timing.MultilinePause); err != nil {
		return err
	}

	// Walk back up over the three lines and rewrite each in place.
	s.Term.CursorUp(3)
	for k := 1; k <= 3; k++ {
		if k > 1 {
			s.Term.CursorDown(1)
		}
		s.Term.Overwrite(fmt.Sprintf("Line %d: Processing...", k))
		if err := s.sleep(ctx, s.Timing.StepInterval); err != nil {
			return err
		}
	}

	s.Term.CursorDown(1)
	s.Term.Println("\r✅ All lines processed!")
	return nil
}

func runBackspace(ctx context.Context, s *Session) error {
	s.Term.Println("\n=== Backspace Demo ===")

	s.Term.Println("Typing effect:")
	for _, r := range typingMessage {
		s.Term.Print(string(r))
		if err := s.sleep(ctx, s.Timing.TypingInterval); err != nil {
			return err
		}
	}

	// Erase the typed message in place, one backspace-space-backspace
	// per character, leaving the line visually empty.
	for n := utf8.RuneCountInString(typingMessage); n > 0; n-- {
		s.Term.EraseChar()
		if err := s.sleep(ctx, s.Timing.TypingInterval); err != nil {
			return err
		}
	}

	s.Term.Println("Done!")
	return nil
}

func runThreaded(ctx context.Context, s *Session) error {
	s.Term.Println("\n=== Threaded Animation Demo ===")

	s.Term.Println("Starting work...")

	spinner := animation.NewSpinner(s.Term, animation.Lines, "Working...", s.Timing.ThreadedInterval, s.Pace)
	spinner.Start()

	// Simulated main work while the spinner animates in the background.
	err := s.sleep(ctx, s.Timing.WorkDuration)

	spinner.Stop()
	s.Term.ClearLine()

	if err != nil {
		return err
	}
	s.Term.Println("✅ Work complete!")
	return nil
}

func runStyles(ctx context.Context, s *Session) error {
	s.Term.Println("\n=== Advanced Loading Demo ===")

	for _, style := range animation.Styles() {
		s.Term.Println(fmt.Sprintf("\n%s animation:", style.Title))
		for i := 0; i < 10; i++ {
			s.Term.Overwrite(fmt.Sprintf("%s %s loading...", style.Frames.At(i), style.Name))
			if err := s.sleep(ctx, s.Timing.StyleInterval); err != nil {
				return err
			}
		}
		s.Term.EndLine(fmt.Sprintf("✅ %s complete!", style.Title))
	}
	return nil
}

func runErrors(ctx context.Context, s *Session) error {
	s.Term.Println("\n=== Error Handling Demo ===")

	s.Term.Println("Starting risky operation...")

	err := func() error {
		for i := 0; i < 5; i++ {
			if i == failStep {
				return errSimulated
			}
			s.Term.Overwrite(fmt.Sprintf("Processing step %d/5...", i+1))
			if err := s.sleep(ctx, s.Timing.StepInterval); err != nil {
				return err
			}
		}
		s.Term.EndLine("✅ Operation completed successfully!")
		return nil
	}()

	if err != nil {
		// A real interrupt is not part of the show; let the driver
		// handle it.
		if ctx.Err() != nil {
			return err
		}
		// Clean up the half-drawn animation before reporting.
		s.Term.ClearLine()
		s.Term.Println(fmt.Sprintf("❌ Error occurred: %v", err))
		s.Term.Println("Console state cleaned up properly.")
	}
	return nil
}

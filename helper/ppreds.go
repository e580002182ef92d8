package helper

import (
	"fmt"
	"math"
	"os"

	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/linear_models"
)

// MinTrainingShifts is the smallest history a prediction is attempted on.
const MinTrainingShifts = 3

func minutesToClock(minutes float64) string {
	m := int(math.Round(minutes))
	m = ((m % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// PredictClockOut fits a linear model of clock-out against clock-in over
// history and returns the expected clock-out ("HH:MM") for clockInMinute.
// Each history row is a {clock-in, clock-out} pair of minutes of day;
// overnight pairs are unwrapped before fitting.
func PredictClockOut(history [][2]int, clockInMinute int) (predicted string, err error) {
	// golearn can panic on degenerate instances.
	defer func() {
		if r := recover(); r != nil {
			predicted, err = "", fmt.Errorf("prediction failed: %v", r)
		}
	}()

	if len(history) < MinTrainingShifts {
		return "", fmt.Errorf("not enough training data: %d shifts", len(history))
	}

	rows := "clock_in,clock_out\n"
	constantClockIn := true
	outTotal := 0.0
	for _, record := range history {
		out := record[1]
		if out < record[0] {
			out += minutesPerDay
		}
		if record[0] != history[0][0] {
			constantClockIn = false
		}
		outTotal += float64(out)
		rows += fmt.Sprintf("%.2f,%.2f\n", float64(record[0]), float64(out))
	}

	// A single clock-in value makes the fit singular; golearn then returns
	// a wrong value with no error. Use the mean clock-out instead.
	if constantClockIn {
		return minutesToClock(outTotal / float64(len(history))), nil
	}

	instances, err := parseCSVInstances(rows)
	if err != nil {
		return "", fmt.Errorf("failed to parse training data: %w", err)
	}

	model := linear_models.NewLinearRegression()
	if err := model.Fit(instances); err != nil {
		return "", fmt.Errorf("failed to train model: %w", err)
	}

	predInstances, err := parseCSVInstances(fmt.Sprintf("clock_in,clock_out\n%.2f,0.00\n", float64(clockInMinute)))
	if err != nil {
		return "", fmt.Errorf("failed to parse prediction data: %w", err)
	}

	predictions, err := model.Predict(predInstances)
	if err != nil {
		return "", fmt.Errorf("prediction failed: %w", err)
	}

	classAttrs := predictions.AllClassAttributes()
	if len(classAttrs) == 0 {
		return "", fmt.Errorf("no class attribute in predictions")
	}

	classSpec := base.ResolveAttributes(predictions, classAttrs)[0]
	predictedMinutes := base.UnpackBytesToFloat(predictions.Get(classSpec, 0))

	return minutesToClock(predictedMinutes), nil
}

// golearn reads CSV from a path, so the rows go through a temp file.
func parseCSVInstances(rows string) (*base.DenseInstances, error) {
	f, err := os.CreateTemp("", "timecard-*.csv")
	if err != nil {
		return nil, err
	}
	defer os.Remove(f.Name())

	if _, err := f.WriteString(rows); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, err
	}

	return base.ParseCSVToInstances(f.Name(), true)
}

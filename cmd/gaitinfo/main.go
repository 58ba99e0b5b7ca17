// Command gaitinfo prints gait metrics of a triaxial accelerometer recording.
//
// Usage:
//
//	gaitinfo [flags] [recording.csv]
//
// The recording is CSV with one sample per row, either "x,y,z" or "t,x,y,z";
// a leading header row is skipped. Without a file argument it reads stdin,
// and with -demo it analyzes a synthetic walk instead.
//
// Examples:
//
//	gaitinfo -rate 100 walk.csv
//	gaitinfo -rate 50 -distance 20 walk.csv
//	gaitinfo -demo
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-gait/dsp/frame"
	"github.com/cwbudde/algo-gait/measure/gait"
)

func main() {
	rate := flag.Float64("rate", 100, "sampling rate of the recording in Hz")
	distance := flag.Float64("distance", 0, "walked distance in meters (0 disables spatial metrics)")
	cutoff := flag.Float64("cutoff", 2, "heel-strike low-pass cutoff in Hz")
	threshold := flag.Float64("threshold", 0.5, "heel-strike amplitude threshold fraction")
	hertz := flag.Bool("hertz", false, "report the peak rate in Hz instead of per sample")
	demo := flag.Bool("demo", false, "analyze a built-in synthetic walk")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gaitinfo [flags] [recording.csv]\n\n")
		fmt.Fprintf(os.Stderr, "Prints gait metrics of a triaxial accelerometer recording.\n")
		fmt.Fprintf(os.Stderr, "Rows are \"x,y,z\" or \"t,x,y,z\"; without a file, stdin is read.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  gaitinfo -rate 100 walk.csv\n")
		fmt.Fprintf(os.Stderr, "  gaitinfo -rate 50 -distance 20 walk.csv\n")
		fmt.Fprintf(os.Stderr, "  gaitinfo -demo\n")
	}
	flag.Parse()

	var (
		x, y, z []float64
		err     error
	)

	switch {
	case *demo:
		x, y, z = demoWalk(*rate)
	case flag.NArg() > 0:
		x, y, z, err = readRecordingFile(flag.Arg(0))
	default:
		x, y, z, err = readRecording(os.Stdin)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	f, err := frame.New(x, y, z, *rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	opts := []gait.Option{
		gait.WithSampleRate(*rate),
		gait.WithCutoffFrequency(*cutoff),
		gait.WithThreshold(*threshold),
		gait.WithDistance(*distance),
	}
	if *hertz {
		opts = append(opts, gait.WithPeakRateUnit(gait.Hertz))
	}

	p, err := gait.New(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printMetrics(p, f, *hertz)
}

// demoWalk synthesizes 20 seconds of walking at 1.5 steps per second.
func demoWalk(rate float64) (x, y, z []float64) {
	n := int(20 * rate)

	x = make([]float64, n)
	y = make([]float64, n)
	z = make([]float64, n)

	for i := range x {
		t := float64(i) / rate
		x[i] = math.Sin(2*math.Pi*1.5*t) * (1 + 0.2*math.Sin(2*math.Pi*0.75*t))
		y[i] = 1 + 0.6*math.Sin(2*math.Pi*1.5*t) + 0.2*math.Sin(2*math.Pi*3*t)
		z[i] = 0.8 * math.Sin(2*math.Pi*0.75*t)
	}

	return x, y, z
}

func readRecordingFile(path string) (x, y, z []float64, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, nil, err
	}
	defer file.Close()

	return readRecording(file)
}

// readRecording parses CSV rows of "x,y,z" or "t,x,y,z" samples. A first
// row that fails to parse as numbers is treated as a header and skipped.
func readRecording(r io.Reader) (x, y, z []float64, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	row := 0

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, nil, nil, err
		}

		row++

		var cols []float64

		cols, err = parseRow(record)
		if err != nil {
			if row == 1 {
				continue // header
			}

			return nil, nil, nil, fmt.Errorf("row %d: %w", row, err)
		}

		x = append(x, cols[0])
		y = append(y, cols[1])
		z = append(z, cols[2])
	}

	if len(x) == 0 {
		return nil, nil, nil, fmt.Errorf("no samples in input")
	}

	return x, y, z, nil
}

func parseRow(record []string) ([]float64, error) {
	switch len(record) {
	case 3:
	case 4:
		record = record[1:] // leading timestamp column
	default:
		return nil, fmt.Errorf("%d columns, want 3 or 4", len(record))
	}

	out := make([]float64, 3)

	for i, field := range record {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, err
		}

		out[i] = v
	}

	return out, nil
}

func printMetrics(p *gait.Processor, f *frame.Frame, hertz bool) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintf(tw, "Samples\t%d\n", f.Len())
	fmt.Fprintf(tw, "Duration\t%.2f s\n", f.Duration())

	if features, err := p.Gait(f); err != nil {
		fmt.Fprintf(tw, "Gait\tunavailable: %v\n", err)
	} else {
		fmt.Fprintf(tw, "Steps\t%d\n", features.NumberOfSteps)
		fmt.Fprintf(tw, "Cadence\t%.3f steps/s\n", features.Cadence)
		fmt.Fprintf(tw, "Step duration\t%.3f ± %.3f s\n", features.AvgStepDuration, features.SDStepDurations)
		fmt.Fprintf(tw, "Stride duration\t%.3f ± %.3f s\n", features.AvgStrideDuration, features.SDStrideDurations)
		fmt.Fprintf(tw, "Step regularity\t%.3f\n", features.StepRegularity)
		fmt.Fprintf(tw, "Stride regularity\t%.3f\n", features.StrideRegularity)
		fmt.Fprintf(tw, "Symmetry\t%.3f\n", features.Symmetry)

		if features.Spatial != nil {
			fmt.Fprintf(tw, "Velocity\t%.3f m/s\n", features.Spatial.Velocity)
			fmt.Fprintf(tw, "Step length\t%.3f steps/m\n", features.Spatial.AvgStepLength)
			fmt.Fprintf(tw, "Stride length\t%.3f strides/m\n", features.Spatial.AvgStrideLength)
		}
	}

	if speed, err := p.SpeedOfGait(f); err != nil {
		fmt.Fprintf(tw, "Gait speed\tunavailable: %v\n", err)
	} else {
		fmt.Fprintf(tw, "Gait speed\t%.3f m/s\n", speed)
	}

	if rate, err := p.FrequencyOfPeaks(f); err != nil {
		fmt.Fprintf(tw, "Peak rate\tunavailable: %v\n", err)
	} else if hertz {
		fmt.Fprintf(tw, "Peak rate\t%.3f Hz\n", rate)
	} else {
		fmt.Fprintf(tw, "Peak rate\t%.5f per sample\n", rate)
	}

	if dir, err := p.WalkDirectionPreheel(f); err != nil {
		fmt.Fprintf(tw, "Direction\tunavailable: %v\n", err)
	} else {
		fmt.Fprintf(tw, "Direction\t[%.3f %.3f %.3f]\n", dir[0], dir[1], dir[2])
	}

	if freeze, err := p.FreezeOfGait(f); err != nil {
		fmt.Fprintf(tw, "Freeze index\tunavailable: %v\n", err)
	} else {
		maxIndex := freeze.FreezeIndex[0]
		for _, v := range freeze.FreezeIndex {
			if v > maxIndex {
				maxIndex = v
			}
		}

		fmt.Fprintf(tw, "Freeze windows\t%d\n", len(freeze.FreezeIndex))
		fmt.Fprintf(tw, "Max freeze index\t%.3f\n", maxIndex)
	}
}

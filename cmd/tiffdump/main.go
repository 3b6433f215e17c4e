// tiffdump prints the directory structure of a TIFF or BigTIFF file:
// every IFD in the top-level chain, any SubIFDs, and (on request) the
// EXIF and GPS side directories.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	tiffcore "github.com/vadz/gotiffcore"
	"github.com/vadz/gotiffcore/ioabi"
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "tiffdump [flags] file",
		Short:        "print the IFD structure of a TIFF/BigTIFF file",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
	}
	cmd.Flags().IntP("max-values", "m", 20, "maximum values to print per tag, 0 for no limit")
	cmd.Flags().Bool("strip-chop", false, "subdivide single-strip images into ~8KiB strips")
	cmd.Flags().Bool("no-mmap", false, "read via seek+read instead of mapping the file")
	cmd.Flags().Bool("count", false, "print only the chain's IFD offsets")
	cmd.Flags().Bool("exif", false, "descend into EXIF and GPS directories")
	viper.SetEnvPrefix("TIFFDUMP")
	viper.AutomaticEnv()
	_ = viper.BindPFlags(cmd.Flags())
	return cmd
}

func run(path string) error {
	var dev ioabi.Device
	var err error
	if viper.GetBool("no-mmap") {
		dev, err = ioabi.OpenFileDevice(path, os.O_RDONLY, 0)
	} else {
		dev, err = ioabi.OpenMappedFileDevice(path)
	}
	if err != nil {
		return err
	}
	defer dev.Close()

	opts := []tiffcore.OpenOption{}
	if viper.GetBool("strip-chop") {
		opts = append(opts, tiffcore.WithStripChop())
	}
	h, err := tiffcore.Open(dev, nil, opts...)
	if err != nil {
		return err
	}

	if viper.GetBool("count") {
		return dumpOffsets(h)
	}

	maxValues := viper.GetInt("max-values")
	for n := 0; ; n++ {
		dir, err := h.ReadNextDirectory()
		if err != nil {
			return err
		}
		if dir == nil {
			break
		}
		fmt.Printf("IFD %d:\n", n)
		printDirectory(dir, maxValues, "  ")
		for _, off := range dir.SubIFDOffsets {
			sub, err := h.ReadSubIFD(off)
			if err != nil {
				fmt.Fprintf(os.Stderr, "subifd at %d: %v\n", off, err)
				continue
			}
			fmt.Printf("  SubIFD at offset %d:\n", off)
			printDirectory(sub, maxValues, "    ")
		}
		if viper.GetBool("exif") {
			dumpSideIFDs(h, dir, maxValues)
		}
	}
	return nil
}

func dumpOffsets(h *tiffcore.Handle) error {
	for {
		dir, err := h.ReadNextDirectory()
		if err != nil {
			return err
		}
		if dir == nil {
			break
		}
	}
	for i, off := range h.Chain().Offsets {
		fmt.Printf("IFD %d at offset %d\n", i, off)
	}
	return nil
}

func dumpSideIFDs(h *tiffcore.Handle, dir *tiffcore.Directory, maxValues int) {
	if dir.ExifIFDOffset != 0 {
		exif, err := tiffcore.ReadCustomDirectory(h.Device(), h.Order(), h.Flavor(), tiffcore.NewExifRegistry(), dir.ExifIFDOffset, h.Chain())
		if err != nil {
			fmt.Fprintf(os.Stderr, "exif ifd: %v\n", err)
		} else {
			fmt.Printf("  EXIF IFD at offset %d:\n", dir.ExifIFDOffset)
			printDirectory(exif, maxValues, "    ")
		}
	}
	if dir.GPSIFDOffset != 0 {
		gps, err := tiffcore.ReadCustomDirectory(h.Device(), h.Order(), h.Flavor(), tiffcore.NewGPSRegistry(), dir.GPSIFDOffset, h.Chain())
		if err != nil {
			fmt.Fprintf(os.Stderr, "gps ifd: %v\n", err)
		} else {
			fmt.Printf("  GPS IFD at offset %d:\n", dir.GPSIFDOffset)
			printDirectory(gps, maxValues, "    ")
		}
	}
}

func printDirectory(dir *tiffcore.Directory, maxValues int, indent string) {
	for _, tag := range tiffcore.WellKnownTags {
		v, ok := dir.Get(tag)
		if !ok {
			continue
		}
		printValue(tag.Name(), v, maxValues, indent)
	}
	for _, c := range dir.Custom {
		printValue(c.Descriptor.Name, c.Value, maxValues, indent)
	}
}

func printValue(name string, v tiffcore.Value, maxValues int, indent string) {
	if s, ok := v.ASCII(); ok {
		fmt.Printf("%s%s = %q\n", indent, name, s)
		return
	}
	n := v.Count()
	shown := n
	if maxValues > 0 && shown > maxValues {
		shown = maxValues
	}
	fmt.Printf("%s%s (%s, count %d) =", indent, name, v.Kind.Name(), n)
	for i := 0; i < shown; i++ {
		if f, ok := v.AnyFloat(i); ok {
			if u, isInt := v.AnyUint(i); isInt {
				fmt.Printf(" %d", u)
			} else {
				fmt.Printf(" %g", f)
			}
			continue
		}
		if b, ok := v.Undefined(); ok {
			fmt.Printf(" %02x", b[i])
		}
	}
	if shown < n {
		fmt.Printf(" ... (%d more)", n-shown)
	}
	fmt.Println()
}

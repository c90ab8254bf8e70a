package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/StrikerX3/DreamNexus/balance"
	"github.com/StrikerX3/DreamNexus/balance/bentry"
	"github.com/StrikerX3/DreamNexus/balance/bwild"
	"github.com/StrikerX3/DreamNexus/config"
	"github.com/StrikerX3/DreamNexus/gcodec"
	"github.com/StrikerX3/DreamNexus/logging"
	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type (
	Args struct {
		Config  string `help:"path to a YAML configuration file" placeholder:"FILE"`
		Codec   string `help:"compression codec: zstd, lz4 or none" placeholder:"NAME"`
		Workers *int   `help:"number of entries processed at once; 0 uses every CPU" placeholder:"N"`
		Verbose bool   `arg:"-v" help:"log every entry"`

		Info   *InfoCmd   `arg:"subcommand:info" help:"list the entries of an archive"`
		Verify *VerifyCmd `arg:"subcommand:verify" help:"check that every entry re-encodes to the same bytes"`
		Export *ExportCmd `arg:"subcommand:export" help:"write an archive as JSON or CBOR"`
		Build  *BuildCmd  `arg:"subcommand:build" help:"build an archive from an exported file"`
		New    *NewCmd    `arg:"subcommand:new" help:"write an archive of empty entries"`
	}
	ArchiveArgs struct {
		Bin string `arg:"--bin,required" help:"path to the data file" placeholder:"dungeon_balance.bin"`
		Ent string `arg:"--ent,required" help:"path to the index file" placeholder:"dungeon_balance.ent"`
	}
	InfoCmd struct {
		ArchiveArgs
	}
	VerifyCmd struct {
		ArchiveArgs
	}
	ExportCmd struct {
		ArchiveArgs
		To     string `arg:"required" help:"path to destination file" placeholder:"balance.json"`
		Format string `default:"json" help:"json or cbor"`
		Force  bool   `help:"overwrite the destination file"`
	}
	BuildCmd struct {
		ArchiveArgs
		From   string `arg:"required" help:"path to an exported file" placeholder:"balance.json"`
		Format string `default:"json" help:"json or cbor"`
		Force  bool   `help:"overwrite the destination files"`
	}
	NewCmd struct {
		ArchiveArgs
		WildPokemon bool `arg:"--wild-pokemon" help:"give every entry an empty wild Pokémon table sized by creature_count"`
		Force       bool `help:"overwrite the destination files"`
	}
	// ErrDestinationExists is returned instead of overwriting a file without --force.
	ErrDestinationExists struct {
		Path string
	}
	ErrSourceMissing struct {
		Path string
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Reads and writes the dungeon balance archive: a data file of compressed",
			"entries and an index file of their offsets.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func (r ErrDestinationExists) Error() string {
	return fmt.Sprintf("destination file %s exists; run the command again with --force to overwrite it", r.Path)
}

func (r ErrSourceMissing) Error() string {
	return fmt.Sprintf("source file %s does not exist", r.Path)
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

func checkSources(paths ...string) error {
	for _, path := range paths {
		if !CheckExistence(path) {
			return ErrSourceMissing{Path: path}
		}
	}
	return nil
}

func checkDestinations(force bool, paths ...string) error {
	if force {
		return nil
	}
	for _, path := range paths {
		if CheckExistence(path) {
			return ErrDestinationExists{Path: path}
		}
	}
	return nil
}

// Settings is the configuration after command line overrides.
func Settings(args Args) (*config.Config, error) {
	cfg := config.Default()
	if args.Config != "" {
		loaded, err := config.Load(args.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if args.Codec != "" {
		cfg.Codec = args.Codec
	}
	if args.Workers != nil {
		cfg.Workers = *args.Workers
	}
	if args.Verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type runner struct {
	cfg   *config.Config
	codec gcodec.Codec
}

func (r runner) readArchive(archive ArchiveArgs) (bin []byte, ent []byte, err error) {
	if err := checkSources(archive.Bin, archive.Ent); err != nil {
		return nil, nil, err
	}
	bin, err = os.ReadFile(archive.Bin)
	if err != nil {
		return nil, nil, errors.Wrap(err, "error reading data file")
	}
	ent, err = os.ReadFile(archive.Ent)
	if err != nil {
		return nil, nil, errors.Wrap(err, "error reading index file")
	}
	return bin, ent, nil
}

func (r runner) writeArchive(ctx context.Context, set *balance.DungeonBalance, archive ArchiveArgs) error {
	bin, ent, err := set.Build(ctx, r.codec, r.cfg.Workers)
	if err != nil {
		return err
	}
	if err := os.WriteFile(archive.Bin, bin, 0644); err != nil {
		return errors.Wrap(err, "error writing data file")
	}
	if err := os.WriteFile(archive.Ent, ent, 0644); err != nil {
		return errors.Wrap(err, "error writing index file")
	}
	fmt.Printf("Wrote %d entries to %s and %s\n", len(set.Entries), archive.Bin, archive.Ent)
	return nil
}

func (r runner) info(ctx context.Context, cmd InfoCmd) error {
	bin, ent, err := r.readArchive(cmd.ArchiveArgs)
	if err != nil {
		return err
	}
	infos, err := balance.Inspect(ctx, bin, ent, r.codec, r.cfg.Workers)
	if err != nil {
		return err
	}
	fmt.Printf("%d entries\n", len(infos))
	for _, info := range infos {
		sections := lo.Map(info.Sections, func(s bentry.Section, _ int) string { return s.String() })
		fmt.Printf("%4d  offset %#08x  %7d -> %7d bytes  %3d floors  %-50s  %s\n",
			info.Index, info.Offset, info.CompressedSize, info.Size, info.FloorCount,
			strings.Join(sections, ","), info.Digest,
		)
	}
	return nil
}

func (r runner) verify(ctx context.Context, cmd VerifyCmd) error {
	bin, ent, err := r.readArchive(cmd.ArchiveArgs)
	if err != nil {
		return err
	}
	mismatches, err := balance.Verify(ctx, bin, ent, r.codec, r.cfg.Workers)
	if err != nil {
		return err
	}
	for _, mismatch := range mismatches {
		fmt.Printf("entry %d differs: %s -> %s\n", mismatch.Index, mismatch.Original, mismatch.Rebuilt)
	}
	if len(mismatches) > 0 {
		return errors.Errorf("%d entries do not round-trip", len(mismatches))
	}
	fmt.Println("Every entry round-trips.")
	return nil
}

func (r runner) export(ctx context.Context, cmd ExportCmd) error {
	format, err := balance.ParseFormat(cmd.Format)
	if err != nil {
		return err
	}
	if err := checkDestinations(cmd.Force, cmd.To); err != nil {
		return err
	}
	bin, ent, err := r.readArchive(cmd.ArchiveArgs)
	if err != nil {
		return err
	}
	set, err := balance.Parse(ctx, bin, ent, r.codec, r.cfg.Workers)
	if err != nil {
		return err
	}
	bs, err := set.Export(format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cmd.To, bs, 0644); err != nil {
		return errors.Wrap(err, "error writing to "+cmd.To)
	}
	fmt.Println("Done exporting. Please check your result file at: " + cmd.To)
	return nil
}

func (r runner) build(ctx context.Context, cmd BuildCmd) error {
	format, err := balance.ParseFormat(cmd.Format)
	if err != nil {
		return err
	}
	if err := checkSources(cmd.From); err != nil {
		return err
	}
	if err := checkDestinations(cmd.Force, cmd.Bin, cmd.Ent); err != nil {
		return err
	}
	bs, err := os.ReadFile(cmd.From)
	if err != nil {
		return errors.Wrap(err, "error reading "+cmd.From)
	}
	set, err := balance.Import(bs, format)
	if err != nil {
		return err
	}
	return r.writeArchive(ctx, set, cmd.ArchiveArgs)
}

func (r runner) create(ctx context.Context, cmd NewCmd) error {
	if err := checkDestinations(cmd.Force, cmd.Bin, cmd.Ent); err != nil {
		return err
	}
	set := balance.New(r.cfg.DungeonCount)
	if cmd.WildPokemon {
		for i := range set.Entries {
			set.Entries[i].WildPokemon = bwild.New(r.cfg.CreatureCount)
		}
	}
	return r.writeArchive(ctx, set, cmd.ArchiveArgs)
}

// Run executes the selected subcommand.
func Run(ctx context.Context, args Args) error {
	cfg, err := Settings(args)
	if err != nil {
		return err
	}
	codec, err := gcodec.ByName(cfg.Codec)
	if err != nil {
		return err
	}
	r := runner{cfg: cfg, codec: codec}

	switch {
	case args.Info != nil:
		return r.info(ctx, *args.Info)
	case args.Verify != nil:
		return r.verify(ctx, *args.Verify)
	case args.Export != nil:
		return r.export(ctx, *args.Export)
	case args.Build != nil:
		return r.build(ctx, *args.Build)
	case args.New != nil:
		return r.create(ctx, *args.New)
	}
	return errors.New("no command given")
}

func Start() {
	args := Args{}
	parser := arg.MustParse(&args)
	if parser.Subcommand() == nil {
		parser.Fail("missing command")
	}

	cfg, err := Settings(args)
	if err != nil {
		parser.Fail(err.Error())
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		parser.Fail(err.Error())
	}
	defer func() { _ = logger.Sync() }()
	logging.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := Run(ctx, args); err != nil {
		logger.Error("command failed", zap.Error(err))
		println("Error: " + err.Error())
		stop()
		_ = logger.Sync()
		os.Exit(1)
	}
}

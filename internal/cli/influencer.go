package cli

import (
	"context"
	"fmt"
	"io"

	"campaigen/internal/services"
)

func parseInfluencerAdd(args []string, stderr io.Writer) (Action, error) {
	fs := newFlagSet("influencer", "add", "Add a new influencer.", stderr)

	var name string
	fs.StringVar(&name, "influencer-name", "", "The name of the influencer (required)")
	fs.StringVar(&name, "name", "", "Alias for -influencer-name")
	handle := fs.String("handle", "", "The influencer's social media handle")
	platform := fs.String("platform", "", "The primary platform (e.g., Instagram, TikTok)")
	niche := fs.String("niche", "", "The influencer's niche or category")

	set, err := parseFlags(fs, args)
	if err != nil {
		return nil, err
	}
	if !set["influencer-name"] && !set["name"] {
		fs.Usage()
		return nil, fmt.Errorf("%w: missing required flags: influencer-name", ErrUsage)
	}

	dto := services.CreateInfluencerDTO{
		Name:     name,
		Handle:   optional(set, *handle, "handle"),
		Platform: optional(set, *platform, "platform"),
		Niche:    optional(set, *niche, "niche"),
	}

	return func(ctx context.Context, svc *Services, stdout io.Writer) error {
		fmt.Fprintf(stdout, "Adding influencer: Name=%s, Handle=%s, Platform=%s, Niche=%s\n",
			dto.Name, display(dto.Handle), display(dto.Platform), display(dto.Niche))

		created, err := svc.Influencers.CreateInfluencer(ctx, dto)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Influencer created with ID: %s\n", created.ID)
		return nil
	}, nil
}

func parseInfluencerList(args []string, stderr io.Writer) (Action, error) {
	fs := newFlagSet("influencer", "list", "List all influencers.", stderr)
	if _, err := parseFlags(fs, args); err != nil {
		return nil, err
	}

	return func(ctx context.Context, svc *Services, stdout io.Writer) error {
		fmt.Fprintln(stdout, "Listing all influencers...")

		influencers, err := svc.Influencers.ListInfluencers(ctx)
		if err != nil {
			return err
		}

		t := newTable(stdout, "ID", "NAME", "HANDLE", "PLATFORM", "NICHE")
		for _, inf := range influencers {
			t.row(inf.ID.String(), inf.Name, display(inf.Handle), display(inf.Platform), display(inf.Niche))
		}
		if err := t.flush(); err != nil {
			return err
		}

		if len(influencers) == 0 {
			fmt.Fprintln(stdout, "No influencers found.")
		}
		return nil
	}, nil
}

func parseInfluencerGet(args []string, stderr io.Writer) (Action, error) {
	fs := newFlagSet("influencer", "get", "Show one influencer.", stderr)
	var id uuidFlag
	fs.Var(&id, "id", "ID of the influencer (required)")
	if _, err := parseFlags(fs, args, "id"); err != nil {
		return nil, err
	}

	return func(ctx context.Context, svc *Services, stdout io.Writer) error {
		inf, found, err := svc.Influencers.GetInfluencer(ctx, id.value)
		if err != nil {
			return err
		}
		if !found {
			fmt.Fprintf(stdout, "No influencer found with ID: %s\n", id.value)
			return nil
		}

		fmt.Fprintf(stdout, "ID:       %s\n", inf.ID)
		fmt.Fprintf(stdout, "Name:     %s\n", inf.Name)
		fmt.Fprintf(stdout, "Handle:   %s\n", display(inf.Handle))
		fmt.Fprintf(stdout, "Platform: %s\n", display(inf.Platform))
		fmt.Fprintf(stdout, "Niche:    %s\n", display(inf.Niche))
		return nil
	}, nil
}

func parseInfluencerDelete(args []string, stderr io.Writer) (Action, error) {
	fs := newFlagSet("influencer", "delete", "Delete an influencer.", stderr)
	var id uuidFlag
	fs.Var(&id, "id", "ID of the influencer (required)")
	if _, err := parseFlags(fs, args, "id"); err != nil {
		return nil, err
	}

	return func(ctx context.Context, svc *Services, stdout io.Writer) error {
		if err := svc.Influencers.DeleteInfluencer(ctx, id.value); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Influencer %s deleted.\n", id.value)
		return nil
	}, nil
}

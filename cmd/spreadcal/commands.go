package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"spreadcal/entities"
	"spreadcal/pkg/application/serviceImp"
	"spreadcal/pkg/calibration"
	"spreadcal/pkg/product"
)

func (o *cli) devicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List spreaders with a calibration chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := o.store()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tKIND\tROWS")
			for _, d := range s.All() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", d.ID, d.DisplayName, d.Kind, len(d.Settings))
			}
			return tw.Flush()
		},
	}
}

func (o *cli) productsCmd() *cobra.Command {
	var query, category string
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List curated products, optionally by search text or category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := o.catalog()
			if err != nil {
				return err
			}
			items := cat.Search(query)
			if category != "" {
				c := entities.Category(category)
				if !c.Valid() {
					return fmt.Errorf("unknown category %q", category)
				}
				if query == "" {
					items = cat.ByCategory(c)
				} else {
					items = product.FilterCategory(items, c)
				}
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tRATE")
			for _, p := range items {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%g\n", p.ID, p.Name, p.Category, p.ApplicationRate.Base)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "match name, brand or NPK")
	cmd.Flags().StringVar(&category, "category", "", "fertilizer, seed, weed_control, pest_control or other")
	return cmd
}

func (o *cli) device(id string) (*entities.Device, error) {
	s, err := o.store()
	if err != nil {
		return nil, err
	}
	d, ok := s.ByID(id)
	if !ok {
		return nil, fmt.Errorf("unknown device %q (see `spreadcal devices`)", id)
	}
	return &d, nil
}

func (o *cli) resolveCmd() *cobra.Command {
	var id string
	var rate float64
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Find the dial setting for a rate in lbs per 1000 sq ft",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := o.device(id)
			if err != nil {
				return err
			}
			res := calibration.Resolve(rate, d.Settings)
			o.logger.Debug("resolved", zap.String("device", d.ID), zap.Float64("rate", rate), zap.String("confidence", string(res.Confidence)))
			return writeJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&id, "device", "", "device id")
	cmd.Flags().Float64Var(&rate, "rate", 0, "target rate")
	_ = cmd.MarkFlagRequired("device")
	_ = cmd.MarkFlagRequired("rate")
	return cmd
}

func (o *cli) calcCmd() *cobra.Command {
	var id, productID string
	var rate float64
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute settings and totals for a product or a manual rate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rateSet := cmd.Flags().Changed("rate")
			if (productID == "") == !rateSet {
				return errors.New("exactly one of --product or --rate is required")
			}
			d, err := o.device(id)
			if err != nil {
				return err
			}
			calc, err := serviceImp.New(o.area)
			if err != nil {
				return err
			}

			var res *entities.ApplicationResult
			if rateSet {
				res, err = calc.ComputeForManualRate(rate, d, nil)
			} else {
				cat, cerr := o.catalog()
				if cerr != nil {
					return cerr
				}
				p, ok := cat.ByID(productID)
				if !ok {
					return fmt.Errorf("unknown product %q", productID)
				}
				res, err = calc.ComputeApplication(&p, d, nil)
			}
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&id, "device", "", "device id")
	cmd.Flags().StringVar(&productID, "product", "", "catalog product id")
	cmd.Flags().Float64Var(&rate, "rate", 0, "manual rate in lbs per 1000 sq ft")
	cmd.Flags().Float64Var(&o.area, "area", 5000, "lawn area in sq ft")
	_ = cmd.MarkFlagRequired("device")
	return cmd
}

package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/haukened/rr-lookup/internal/dns/common/rrdata"
	"github.com/haukened/rr-lookup/internal/dns/domain"
)

// table column padding
const cellPadding = 2

// Render writes the header table and, when present, the answer table of resp.
// A compressed owner name is shown as a Domain line between the two.
func Render(w io.Writer, resp domain.Response) error {
	if err := writeHeader(w, resp.Header); err != nil {
		return err
	}
	if resp.Answer == nil {
		return nil
	}
	if resp.Answer.OwnerCompressed {
		if _, err := fmt.Fprintf(w, "\nDomain: %s\n\n", resp.Answer.Owner); err != nil {
			return err
		}
	}
	return writeAnswer(w, *resp.Answer)
}

func writeHeader(w io.Writer, h domain.Header) error {
	if _, err := fmt.Fprintln(w, "# HEADER"); err != nil {
		return err
	}
	f := h.Flags
	return writeTable(w,
		[]string{"ID", "QR", "OPCODE", "AA", "TC", "RD", "RA", "RCODE", "QD", "AN", "NS", "AR"},
		[]string{
			strconv.Itoa(int(h.ID)),
			f.QR.Description(),
			f.Opcode.Description(),
			f.AA.Description(),
			f.TC.Description(),
			f.RD.Description(),
			f.RA.Description(),
			f.RCode.Description(),
			strconv.Itoa(int(h.QDCount)),
			strconv.Itoa(int(h.ANCount)),
			strconv.Itoa(int(h.NSCount)),
			strconv.Itoa(int(h.ARCount)),
		},
	)
}

func writeAnswer(w io.Writer, rr domain.ResourceRecord) error {
	if _, err := fmt.Fprintln(w, "# ANSWER SECTION"); err != nil {
		return err
	}
	return writeTable(w,
		[]string{"TYPE", "CLASS", "TTL", "IP_OR_FQDN"},
		[]string{rr.Type.String(), rr.Class.String(), strconv.FormatUint(uint64(rr.TTL), 10), rrdata.Format(rr)},
	)
}

// writeTable aligns rows into space-separated columns.
func writeTable(w io.Writer, rows ...[]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, cellPadding, ' ', 0)
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				if _, err := io.WriteString(tw, "\t"); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(tw, cell); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(tw, "\n"); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// Package rpmpkg implements PackageAssembler and PackageReader: the
// end-to-end pipeline that turns a FileSource into a byte-exact RPM file,
// and its inverse, used for round-trip verification.
package rpmpkg

import (
	"fmt"
	"io"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/apex/log"

	"github.com/gorpm/rpmpack/internal/compress"
	"github.com/gorpm/rpmpack/internal/digest"
	"github.com/gorpm/rpmpack/internal/fssource"
	"github.com/gorpm/rpmpack/internal/rpmsection"
)

// Options carries everything the assembler needs beyond the raw file
// payload: package identity, descriptive metadata, and the deterministic
// build time every byte-exact run must share.
type Options struct {
	Identity  Identity
	Metadata  Metadata
	BuildTime int64 // seconds since epoch; a config input, never time.Now()

	// SigningKeyring, if non-empty, causes the signature section to carry
	// a detached RPMSIGTAG_PGP signature over the header blob.
	SigningKeyring openpgp.EntityList
}

// Assemble runs the five-phase pipeline described by the package design —
// CPIO construction, compression, header population, signature population,
// lead construction — and writes the concatenated result to out.
func Assemble(source fssource.FileSource, opts Options, out io.Writer) error {
	entries, err := source.Entries()
	if err != nil {
		return fmt.Errorf("rpmpkg: reading file source: %w", err)
	}

	fileDigestAlgo := resolveFileDigestAlgo(opts.Metadata.FileDigestAlgo)

	log.Info("Creating data section")

	cpioBytes, stats, err := buildCPIO(entries, fileDigestAlgo)
	if err != nil {
		return err
	}

	compressedPayload, err := compress.CompressAll(cpioBytes)
	if err != nil {
		return err
	}

	log.Info("Generating header section")

	header, err := buildHeader(opts.Identity, opts.Metadata, opts.BuildTime, stats, "", fileDigestAlgo)
	if err != nil {
		return err
	}
	headerBlob, err := rpmsection.Encode(header, false)
	if err != nil {
		return err
	}

	log.Info("Computing a signature")

	var pgpSig []byte
	if len(opts.SigningKeyring) > 0 {
		pgpSig, err = digest.SignPGP(headerBlob, opts.SigningKeyring)
		if err != nil {
			return err
		}
	}

	signature, err := buildSignature(headerBlob, compressedPayload, int64(len(cpioBytes)), pgpSig)
	if err != nil {
		return err
	}
	signatureBlob, err := rpmsection.Encode(signature, true)
	if err != nil {
		return err
	}

	log.Info("Computing lead section")

	lead := NewLead(opts.Identity.NVR(), opts.Identity.Arch, opts.Identity.OS)
	leadBlob := lead.Encode()

	for _, chunk := range [][]byte{leadBlob, signatureBlob, headerBlob, compressedPayload} {
		if _, err := out.Write(chunk); err != nil {
			return fmt.Errorf("%w: %s", ErrIO, err)
		}
	}
	return nil
}

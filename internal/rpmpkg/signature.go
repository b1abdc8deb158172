package rpmpkg

import (
	"github.com/gorpm/rpmpack/internal/digest"
	"github.com/gorpm/rpmpack/internal/rpmtag"
)

// buildSignature assembles the signature TagStore. Tags are Set in
// ascending numeric order (rpmtag.SigOrder), the deliberate tie-break this
// codec uses where the reference format leaves ordering unconstrained.
func buildSignature(headerBlob, compressedPayload []byte, uncompressedCPIOSize int64,
	pgpSig []byte) (*rpmtag.TagStore, error) {

	size := int32(len(headerBlob) + len(compressedPayload))
	bodyDigest := make([]byte, 0, len(headerBlob)+len(compressedPayload))
	bodyDigest = append(bodyDigest, headerBlob...)
	bodyDigest = append(bodyDigest, compressedPayload...)

	type pending struct {
		tag rpmtag.Tag
		val rpmtag.Value
	}
	tags := []pending{
		{rpmtag.SigSize, rpmtag.Int32Value([]int32{size})},
		{rpmtag.SigMD5, rpmtag.BinaryValue(digest.MD5(bodyDigest))},
		{rpmtag.SigSHA1, rpmtag.StringValue(digest.SHA1Hex(headerBlob))},
		{rpmtag.SigSHA256, rpmtag.StringValue(digest.SHA256Hex(headerBlob))},
		{rpmtag.SigPayloadSize, rpmtag.Int32Value([]int32{int32(uncompressedCPIOSize)})},
	}
	if len(pgpSig) > 0 {
		tags = append(tags, pending{rpmtag.SigPGP, rpmtag.BinaryValue(pgpSig)})
	}

	order := make([]rpmtag.Tag, len(tags))
	for i, t := range tags {
		order[i] = t.tag
	}
	order = rpmtag.SigOrder(order)

	byTag := make(map[rpmtag.Tag]rpmtag.Value, len(tags))
	for _, t := range tags {
		byTag[t.tag] = t.val
	}

	s := rpmtag.NewTagStore()
	if err := s.SetImmutableRegion(rpmtag.SigHeaderImmutable); err != nil {
		return nil, err
	}
	for _, tag := range order {
		if err := s.Set(tag, byTag[tag]); err != nil {
			return nil, err
		}
	}
	return s, nil
}

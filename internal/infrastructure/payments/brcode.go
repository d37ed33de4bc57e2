package payments

import (
	"fmt"
	"strings"
)

const (
	brCodeGUI          = "BR.GOV.BCB.PIX"
	brCodeMerchantName = "PIX MOCK"
	brCodeMerchantCity = "SAO PAULO"
	brCodeMaxTxIDLen   = 25
)

// emvField encodes one ID/length/value triple. Values are ASCII and at most
// 99 bytes long.
func emvField(id, value string) string {
	return fmt.Sprintf("%s%02d%s", id, len(value), value)
}

// staticBRCode renders a PIX copy-and-paste payload for key with a fixed
// amount, closed by its CRC16 field.
func staticBRCode(key, txid, amount string) string {
	txid = strings.ToUpper(strings.ReplaceAll(txid, "-", ""))
	if len(txid) > brCodeMaxTxIDLen {
		txid = txid[:brCodeMaxTxIDLen]
	}

	var b strings.Builder
	b.WriteString(emvField("00", "01"))
	b.WriteString(emvField("26", emvField("00", brCodeGUI)+emvField("01", key)))
	b.WriteString(emvField("52", "0000"))
	b.WriteString(emvField("53", "986"))
	b.WriteString(emvField("54", amount))
	b.WriteString(emvField("58", "BR"))
	b.WriteString(emvField("59", brCodeMerchantName))
	b.WriteString(emvField("60", brCodeMerchantCity))
	b.WriteString(emvField("62", emvField("05", txid)))
	b.WriteString("6304")

	payload := b.String()
	return payload + crc16CCITT(payload)
}

// crc16CCITT is CRC-16/CCITT-FALSE (poly 0x1021, init 0xFFFF) as four
// uppercase hex digits.
func crc16CCITT(data string) string {
	crc := uint16(0xFFFF)
	for i := 0; i < len(data); i++ {
		crc ^= uint16(data[i]) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return fmt.Sprintf("%04X", crc)
}

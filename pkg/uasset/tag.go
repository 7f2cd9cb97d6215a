package uasset

import (
	"bytes"
	"encoding/binary"
)

// findLabelTag は本体からプロパティタグの16バイトパターン
// [ラベル名インデックス, 0, StrPropertyインデックス, 0]（各4バイトの
// リトルエンディアン整数）を検索します。
//
// アクターはフォルダより圧倒的に数が多いため、ActorLabel → FolderLabel
// の順に試すことで平均性能も有利になります。汎用のLabelも一部の
// バージョンで有効なプロパティ名のため、最後の候補として試します。
//
// 同一候補に複数のタグが一致する場合は最小オフセットのタグを採用し、
// 走査はそこで打ち切ります。ラベルプロパティはプロパティリストの
// 先頭付近に1度だけ現れるという観測に基づくヒューリスティックであり、
// エンジンが保証する不変条件ではありません。
func (d *decoder) findLabelTag(idx nameIndices) (offset int, kind LabelKind, err error) {
	if idx.str < 0 {
		return 0, 0, ErrTagNotFound
	}

	candidates := [...]struct {
		index int
		kind  LabelKind
	}{
		{idx.actor, KindActorLabel},
		{idx.folder, KindFolderLabel},
		{idx.label, KindLabel},
	}

	var pattern [tagSize]byte
	binary.LittleEndian.PutUint32(pattern[8:], uint32(idx.str))

	for _, c := range candidates {
		if c.index < 0 {
			continue
		}
		binary.LittleEndian.PutUint32(pattern[0:], uint32(c.index))

		if off := bytes.Index(d.data, pattern[:]); off >= 0 {
			return off, c.kind, nil
		}
	}

	return 0, 0, ErrTagNotFound
}

//  Copyright (c) 2026 Docustore, Inc.
//  Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file
//  except in compliance with the License. You may obtain a copy of the License at
//    http://www.apache.org/licenses/LICENSE-2.0
//  Unless required by applicable law or agreed to in writing, software distributed under the
//  License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
//  either express or implied. See the License for the specific language governing permissions
//  and limitations under the License.

package plan

type Visitor interface {
	// Scans
	VisitCollectionScan(op *CollectionScan) (interface{}, error)
	VisitIndexScan(op *IndexScan) (interface{}, error)
	VisitGeo2DScan(op *Geo2DScan) (interface{}, error)
	VisitGeoNear2DSphereScan(op *GeoNear2DSphereScan) (interface{}, error)
	VisitTextScan(op *TextScan) (interface{}, error)

	// Fetch
	VisitFetch(op *Fetch) (interface{}, error)

	// Combinators
	VisitAndHashScan(op *AndHashScan) (interface{}, error)
	VisitAndSortedScan(op *AndSortedScan) (interface{}, error)
	VisitUnionScan(op *UnionScan) (interface{}, error)
	VisitMergeSortScan(op *MergeSortScan) (interface{}, error)
}
